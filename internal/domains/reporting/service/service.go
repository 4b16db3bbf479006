package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"orchid/infras/otel"
	billingRepository "orchid/internal/domains/billing/repository"
	guestRepository "orchid/internal/domains/guest/repository"
	inventoryModel "orchid/internal/domains/inventory/model"
	inventoryDto "orchid/internal/domains/inventory/model/dto"
	inventoryRepository "orchid/internal/domains/inventory/repository"
	"orchid/internal/domains/reporting/model"
	"orchid/internal/domains/reporting/model/dto"
	restaurantDto "orchid/internal/domains/restaurant/model/dto"
	restaurantRepository "orchid/internal/domains/restaurant/repository"
	"orchid/shared/constant"
	"orchid/shared/failure"
	"orchid/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Reporting interface {
	Search(ctx context.Context, params dto.SearchParams) (dto.SearchResponse, error)
	BuildReport(ctx context.Context) (dto.ReportResponse, error)
	Export(ctx context.Context) (dto.ExportResponse, error)
}

type serviceImpl struct {
	guests     guestRepository.Guest
	inventory  inventoryRepository.Inventory
	billing    billingRepository.Billing
	restaurant restaurantRepository.Restaurant
	otel       otel.Otel
}

func New(
	guests guestRepository.Guest,
	inventory inventoryRepository.Inventory,
	billing billingRepository.Billing,
	restaurant restaurantRepository.Restaurant,
	otel otel.Otel,
) Reporting {
	return &serviceImpl{
		guests:     guests,
		inventory:  inventory,
		billing:    billing,
		restaurant: restaurant,
		otel:       otel,
	}
}

// Search performs a case-insensitive substring match over the selected
// record kind. An empty query matches everything.
func (s *serviceImpl) Search(ctx context.Context, params dto.SearchParams) (res dto.SearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	kind := model.SearchKind(params.Kind)
	if !kind.Valid() {
		return res, failure.InvalidSearchType // nolint:wrapcheck
	}

	query := strings.ToLower(params.Query)
	res.Kind = string(kind)

	switch kind {
	case model.SearchKindGuests:
		err = s.searchGuests(ctx, query, &res)
	case model.SearchKindBookings:
		err = s.searchBookings(ctx, query, &res)
	case model.SearchKindOrders:
		err = s.searchOrders(ctx, query, &res)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", params.Kind).Msg("search failed")

		return res, fmt.Errorf("search failed: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) searchGuests(ctx context.Context, query string, res *dto.SearchResponse) error {
	guests, err := s.guests.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get guests: %w", err)
	}

	res.Guests = []dto.GuestResponse{}
	for _, guest := range guests {
		if !matches(query, guest.Name, guest.Email, guest.Phone) {
			continue
		}

		item := dto.GuestResponse{}
		item.FromModel(guest)
		res.Guests = append(res.Guests, item)
	}

	res.TotalData = len(res.Guests)

	return nil
}

func (s *serviceImpl) searchBookings(ctx context.Context, query string, res *dto.SearchResponse) error {
	bookings, err := s.inventory.GetBookings(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bookings: %w", err)
	}

	res.Bookings = []inventoryDto.BookingResponse{}
	for _, booking := range bookings {
		if !matches(query, booking.GuestName, booking.RoomNo) {
			continue
		}

		item := inventoryDto.BookingResponse{}
		item.FromModel(booking)
		res.Bookings = append(res.Bookings, item)
	}

	res.TotalData = len(res.Bookings)

	return nil
}

func (s *serviceImpl) searchOrders(ctx context.Context, query string, res *dto.SearchResponse) error {
	orders, err := s.restaurant.GetOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to get orders: %w", err)
	}

	res.Orders = []restaurantDto.OrderResponse{}
	for _, order := range orders {
		if !matches(query, order.GuestName, strconv.FormatInt(order.ID, 10)) {
			continue
		}

		item := restaurantDto.OrderResponse{}
		item.FromModel(order)
		res.Orders = append(res.Orders, item)
	}

	res.TotalData = len(res.Orders)

	return nil
}

// BuildReport aggregates current state into a summary. Pure read, no side
// effects on any collection.
func (s *serviceImpl) BuildReport(ctx context.Context) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BuildReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	report, err := s.buildReport(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to build report")

		return res, err
	}

	res.FromModel(report)

	return res, nil
}

// Export renders the report as a plain-text document with a download
// filename. The presentation layer streams it as-is.
func (s *serviceImpl) Export(ctx context.Context) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	report, err := s.buildReport(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to build report for export")

		return res, err
	}

	res.Document = renderReport(report)
	res.Filename = fmt.Sprintf("hotel-report-%s.txt", uuid.NewString())

	scope.AddEvent("Report exported as " + res.Filename)

	return res, nil
}

func (s *serviceImpl) buildReport(ctx context.Context) (model.Report, error) {
	rooms, err := s.inventory.GetRooms(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.inventory.GetBookings(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to get bookings: %w", err)
	}

	bills, err := s.billing.GetAll(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to get bills: %w", err)
	}

	orders, err := s.restaurant.GetOrders(ctx)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to get orders: %w", err)
	}

	report := model.Report{
		TotalRooms:    len(rooms),
		TotalBookings: len(bookings),
		TotalOrders:   len(orders),
		GeneratedAt:   timezone.Now(),
	}

	for _, room := range rooms {
		switch room.Status {
		case inventoryModel.RoomStatusAvailable:
			report.AvailableRooms++
		case inventoryModel.RoomStatusOccupied:
			report.OccupiedRooms++
		case inventoryModel.RoomStatusMaintenance:
		}
	}

	for _, bill := range bills {
		report.TotalRevenue += bill.Total
	}

	for _, order := range orders {
		report.TotalRevenue += order.Total
	}

	return report, nil
}

func renderReport(report model.Report) string {
	var b strings.Builder

	b.WriteString("HOTEL MANAGEMENT SYSTEM REPORT\n")
	b.WriteString("Generated: " + timezone.Format(report.GeneratedAt, constant.DateFormat) + "\n")
	b.WriteString("================================\n\n")

	b.WriteString("ROOM STATISTICS:\n")
	fmt.Fprintf(&b, "- Total Rooms: %d\n", report.TotalRooms)
	fmt.Fprintf(&b, "- Available: %d\n", report.AvailableRooms)
	fmt.Fprintf(&b, "- Occupied: %d\n\n", report.OccupiedRooms)

	b.WriteString("OPERATIONS:\n")
	fmt.Fprintf(&b, "- Total Bookings: %d\n", report.TotalBookings)
	fmt.Fprintf(&b, "- Total Orders: %d\n\n", report.TotalOrders)

	b.WriteString("FINANCIAL:\n")
	fmt.Fprintf(&b, "- Total Revenue: $%.2f\n", report.TotalRevenue)

	return b.String()
}

func matches(query string, fields ...string) bool {
	if query == constant.Empty {
		return true
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}
