package dto

import (
	"orchid/internal/domains/inventory/model"
	"orchid/shared/constant"
	"orchid/shared/timezone"
)

// CreateBookingRequest carries the booking form fields. Check-in and check-out
// are kept as free-form date strings and their ordering is not enforced.
type CreateBookingRequest struct {
	RoomID    int64  `json:"room_id"    validate:"required"`
	GuestName string `json:"guest_name" validate:"required,max=100"`
	CheckIn   string `json:"check_in"   validate:"required"`
	CheckOut  string `json:"check_out"  validate:"required"`
}

func (c *CreateBookingRequest) ToModel(roomNo string) model.Booking {
	return model.Booking{
		GuestName: c.GuestName,
		RoomNo:    roomNo,
		CheckIn:   c.CheckIn,
		CheckOut:  c.CheckOut,
		RoomID:    c.RoomID,
		CreatedAt: timezone.Now(),
	}
}

type RoomResponse struct {
	ID     int64   `json:"id"`
	RoomNo string  `json:"room_no"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNo = model.RoomNo
	r.Type = string(model.Type)
	r.Price = model.Price
	r.Status = string(model.Status)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type BookingResponse struct {
	ID        int64  `json:"id"`
	GuestName string `json:"guest_name"`
	RoomNo    string `json:"room_no"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	RoomID    int64  `json:"room_id"`
	CreatedAt string `json:"created_at"`
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.GuestName = model.GuestName
	b.RoomNo = model.RoomNo
	b.CheckIn = model.CheckIn
	b.CheckOut = model.CheckOut
	b.RoomID = model.RoomID
	b.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.TotalData = len(models)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
