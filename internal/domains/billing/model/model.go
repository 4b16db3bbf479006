package model

import "time"

const (
	EntityName = "bill"
)

// Bill is immutable once generated. RoomCharge and Total are computed at
// generation time and never recomputed.
type Bill struct {
	ID         int64
	GuestName  string
	RoomNo     string
	Nights     int
	RoomCharge float64
	Services   float64
	Total      float64
	Date       time.Time
}
