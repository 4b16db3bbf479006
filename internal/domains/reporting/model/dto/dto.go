package dto

import (
	"net/http"

	guestModel "orchid/internal/domains/guest/model"
	inventoryDto "orchid/internal/domains/inventory/model/dto"
	"orchid/internal/domains/reporting/model"
	restaurantDto "orchid/internal/domains/restaurant/model/dto"
	"orchid/shared/constant"
	"orchid/shared/timezone"
)

// SearchParams carries the search form inputs. An empty query matches every
// record of the selected kind.
type SearchParams struct {
	Kind  string `json:"type" validate:"required,oneof=guests bookings orders"`
	Query string `json:"q"    validate:"omitempty"`
}

// FromRequest populates SearchParams from the HTTP request query string.
func (p *SearchParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	p.Kind = queryParams.Get(constant.RequestParamSearchType)
	p.Query = queryParams.Get(constant.RequestParamSearchQuery)
}

type GuestResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (g *GuestResponse) FromModel(model guestModel.Guest) {
	g.ID = model.ID
	g.Name = model.Name
	g.Phone = model.Phone
	g.Email = model.Email
	g.Address = model.Address
}

// SearchResponse carries the matches for exactly one kind; the other two
// slices stay empty.
type SearchResponse struct {
	Kind      string                         `json:"kind"`
	Guests    []GuestResponse                `json:"guests,omitempty"`
	Bookings  []inventoryDto.BookingResponse `json:"bookings,omitempty"`
	Orders    []restaurantDto.OrderResponse  `json:"orders,omitempty"`
	TotalData int                            `json:"total_data"`
}

type ReportResponse struct {
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	OccupiedRooms  int     `json:"occupied_rooms"`
	TotalBookings  int     `json:"total_bookings"`
	TotalOrders    int     `json:"total_orders"`
	TotalRevenue   float64 `json:"total_revenue"`
	GeneratedAt    string  `json:"generated_at"`
}

func (r *ReportResponse) FromModel(model model.Report) {
	r.TotalRooms = model.TotalRooms
	r.AvailableRooms = model.AvailableRooms
	r.OccupiedRooms = model.OccupiedRooms
	r.TotalBookings = model.TotalBookings
	r.TotalOrders = model.TotalOrders
	r.TotalRevenue = model.TotalRevenue
	r.GeneratedAt = timezone.Format(model.GeneratedAt, constant.DateFormat)
}

// ExportResponse is the rendered plain-text report document plus the
// download filename offered to the client.
type ExportResponse struct {
	Filename string
	Document string
}
