package model

import "time"

const (
	EntityName        = "room"
	BookingEntityName = "booking"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
	RoomTypeDeluxe RoomType = "Deluxe"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}

	return false
}

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance:
		return true
	}

	return false
}

type Room struct {
	ID     int64
	RoomNo string
	Type   RoomType
	Price  float64
	Status RoomStatus
}

// Booking is an append-only record. The only status transition it triggers is
// Available to Occupied on the booked room; there is no release operation.
type Booking struct {
	ID        int64
	GuestName string
	RoomNo    string
	CheckIn   string
	CheckOut  string
	RoomID    int64
	CreatedAt time.Time
}
