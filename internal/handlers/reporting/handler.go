package reporting

import (
	"fmt"
	"net/http"

	"orchid/infras/otel"
	"orchid/internal/domains/reporting/model/dto"
	"orchid/internal/domains/reporting/service"
	"orchid/shared/constant"
	"orchid/shared/logger"
	"orchid/shared/validator"
	"orchid/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reporting
	otel    otel.Otel
}

func New(service service.Reporting, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/search", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Search)
	})

	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.BuildReport)
		routerGroup.Get("/export", handler.Export)
	})
}

// Search filters records by a free-text query.
// @Summary Search records
// @Description Case-insensitive substring search over guests, bookings or orders. An empty query matches everything.
// @Tags Reporting
// @Produce json
// @Param type query string true "Record kind (guests, bookings, orders)"
// @Param q query string false "Search query"
// @Success 200 {object} response.Data[dto.SearchResponse] "Matching records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/search [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	params := dto.SearchParams{}
	params.FromRequest(r)

	if err := validator.ValidateStruct(&params); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate search params")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Search(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("search failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// BuildReport aggregates current state into a summary report.
// @Summary Build a summary report
// @Description Aggregate room, booking, order and revenue statistics from current state.
// @Tags Reporting
// @Produce json
// @Success 200 {object} response.Data[dto.ReportResponse] "Summary report"
// @Failure 500 {object} response.Error
// @Router /v1/reports [get]
func (handler *Handler) BuildReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BuildReport")
	defer scope.End()

	report, err := handler.service.BuildReport(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// Export streams the report as a downloadable plain-text document.
// @Summary Export the report as text
// @Description Render the summary report as a plain-text document offered as a download.
// @Tags Reporting
// @Produce plain
// @Success 200 {string} string "Report document"
// @Failure 500 {object} response.Error
// @Router /v1/reports/export [get]
func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Export")
	defer scope.End()

	export, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)
	w.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(export.Document)); err != nil {
		logger.ErrorWithStack(err)
	}
}
