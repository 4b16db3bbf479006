package billing

import (
	"net/http"

	"orchid/infras/otel"
	"orchid/internal/domains/billing/model/dto"
	"orchid/internal/domains/billing/service"
	"orchid/shared/constant"
	"orchid/shared/validator"
	"orchid/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bills", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.GenerateBill)
		routerGroup.Get("/", handler.GetBills)
	})
}

// GenerateBill computes and records a stay invoice.
// @Summary Generate a bill
// @Description Compute the room charge from nights and price per night, add services, and append the bill to the log.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.GenerateBillRequest true "Generate Bill Request"
// @Success 201 {object} response.Data[dto.BillResponse] "Bill generated"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bills [post]
func (handler *Handler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateBill")
	defer scope.End()

	req := dto.GenerateBillRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	bill, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate bill")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill generated for " + bill.GuestName)

	response.WithJSON(w, http.StatusCreated, bill)
}

// GetBills returns the bill history.
// @Summary List all bills
// @Description Retrieve every bill in insertion order.
// @Tags Billing
// @Produce json
// @Success 200 {object} response.Data[dto.GetBillsResponse] "Bill log"
// @Failure 500 {object} response.Error
// @Router /v1/bills [get]
func (handler *Handler) GetBills(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBills")
	defer scope.End()

	bills, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bills")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bills)
}
