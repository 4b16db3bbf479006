package model

import "time"

type SearchKind string

const (
	SearchKindGuests   SearchKind = "guests"
	SearchKindBookings SearchKind = "bookings"
	SearchKindOrders   SearchKind = "orders"
)

func (k SearchKind) Valid() bool {
	switch k {
	case SearchKindGuests, SearchKindBookings, SearchKindOrders:
		return true
	}

	return false
}

// Report is a read-only summary derived from current inventory, booking,
// bill and order state.
type Report struct {
	TotalRooms     int
	AvailableRooms int
	OccupiedRooms  int
	TotalBookings  int
	TotalOrders    int
	TotalRevenue   float64
	GeneratedAt    time.Time
}
