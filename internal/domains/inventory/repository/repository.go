package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"sync"

	"orchid/infras/otel"
	"orchid/internal/domains/inventory/model"
	"orchid/shared/constant"
)

var (
	// ErrRoomNotFound is returned when a room id does not resolve.
	ErrRoomNotFound = errors.New("room not found")
	// ErrRoomUnavailable is returned when the booked room is not in the Available status.
	ErrRoomUnavailable = errors.New("room is not available")
)

type Inventory interface {
	GetRooms(ctx context.Context) ([]model.Room, error)
	GetRoom(ctx context.Context, id int64) (model.Room, error)
	InsertBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetBookings(ctx context.Context) ([]model.Booking, error)
}

// storeImpl holds the process-local room inventory and the append-only
// booking log. It is the sole mutator of room status.
type storeImpl struct {
	mu       sync.RWMutex
	rooms    []model.Room
	bookings []model.Booking
	sequence int64
	otel     otel.Otel
}

func New(rooms []model.Room, otel otel.Otel) Inventory {
	return &storeImpl{
		rooms: rooms,
		otel:  otel,
	}
}

func (s *storeImpl) GetRooms(ctx context.Context) ([]model.Room, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetRooms")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]model.Room, len(s.rooms))
	copy(rooms, s.rooms)

	return rooms, nil
}

func (s *storeImpl) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetRoom")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.ID == id {
			return room, nil
		}
	}

	return model.Room{}, ErrRoomNotFound
}

// InsertBooking resolves the booked room, transitions it to Occupied and
// appends the booking under a single lock, so the status check and the log
// append cannot interleave with another booking for the same room.
func (s *storeImpl) InsertBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".InsertBooking")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, room := range s.rooms {
		if room.ID == booking.RoomID {
			idx = i
			break
		}
	}

	if idx < 0 {
		scope.TraceError(ErrRoomNotFound)

		return model.Booking{}, ErrRoomNotFound
	}

	if s.rooms[idx].Status != model.RoomStatusAvailable {
		scope.TraceError(ErrRoomUnavailable)

		return model.Booking{}, ErrRoomUnavailable
	}

	s.rooms[idx].Status = model.RoomStatusOccupied

	s.sequence++
	booking.ID = s.sequence
	booking.RoomNo = s.rooms[idx].RoomNo
	s.bookings = append(s.bookings, booking)

	return booking, nil
}

func (s *storeImpl) GetBookings(ctx context.Context) ([]model.Booking, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetBookings")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]model.Booking, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings, nil
}
