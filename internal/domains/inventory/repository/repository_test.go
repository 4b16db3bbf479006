package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"orchid/infras/otel/mocks"
	"orchid/internal/domains/inventory/model"
	"orchid/internal/domains/inventory/repository"
)

func seedRooms() []model.Room {
	return []model.Room{
		{ID: 1, RoomNo: "101", Type: model.RoomTypeSingle, Price: 80, Status: model.RoomStatusAvailable},
		{ID: 2, RoomNo: "102", Type: model.RoomTypeSingle, Price: 80, Status: model.RoomStatusOccupied},
		{ID: 3, RoomNo: "302", Type: model.RoomTypeSuite, Price: 200, Status: model.RoomStatusMaintenance},
	}
}

func TestInventoryStore_GetRooms(t *testing.T) {
	store := repository.New(seedRooms(), mocks.NewOtel())

	rooms, err := store.GetRooms(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rooms, 3)

	// Returned slice is a copy; mutating it must not leak into the store.
	rooms[0].Status = model.RoomStatusMaintenance

	again, err := store.GetRooms(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, model.RoomStatusAvailable, again[0].Status)
}

func TestInventoryStore_GetRoom(t *testing.T) {
	store := repository.New(seedRooms(), mocks.NewOtel())

	room, err := store.GetRoom(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "101", room.RoomNo)

	_, err = store.GetRoom(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
}

func TestInventoryStore_InsertBooking(t *testing.T) {
	t.Run("booking flips room to occupied", func(t *testing.T) {
		store := repository.New(seedRooms(), mocks.NewOtel())

		booking, err := store.InsertBooking(context.Background(), model.Booking{
			GuestName: "John Doe",
			RoomID:    1,
			CheckIn:   "2026-09-01",
			CheckOut:  "2026-09-03",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
		assert.Equal(t, "101", booking.RoomNo)

		room, err := store.GetRoom(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, model.RoomStatusOccupied, room.Status)
	})

	t.Run("occupied room rejected", func(t *testing.T) {
		store := repository.New(seedRooms(), mocks.NewOtel())

		_, err := store.InsertBooking(context.Background(), model.Booking{GuestName: "John Doe", RoomID: 2})

		assert.ErrorIs(t, err, repository.ErrRoomUnavailable)

		bookings, err := store.GetBookings(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("maintenance room rejected", func(t *testing.T) {
		store := repository.New(seedRooms(), mocks.NewOtel())

		_, err := store.InsertBooking(context.Background(), model.Booking{GuestName: "John Doe", RoomID: 3})

		assert.ErrorIs(t, err, repository.ErrRoomUnavailable)
	})

	t.Run("unknown room rejected", func(t *testing.T) {
		store := repository.New(seedRooms(), mocks.NewOtel())

		_, err := store.InsertBooking(context.Background(), model.Booking{GuestName: "John Doe", RoomID: 99})

		assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	})

	t.Run("concurrent bookings win at most once per room", func(t *testing.T) {
		store := repository.New(seedRooms(), mocks.NewOtel())

		const attempts = 16

		var wg sync.WaitGroup
		errs := make([]error, attempts)

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = store.InsertBooking(context.Background(), model.Booking{GuestName: "John Doe", RoomID: 1})
			}(i)
		}
		wg.Wait()

		won := 0
		for _, err := range errs {
			if err == nil {
				won++
			} else {
				assert.ErrorIs(t, err, repository.ErrRoomUnavailable)
			}
		}

		assert.Equal(t, 1, won)

		bookings, err := store.GetBookings(context.Background())
		assert.NoError(t, err)
		assert.Len(t, bookings, 1)
	})
}

func TestInventoryStore_BookingIDsAreSequential(t *testing.T) {
	rooms := append(seedRooms(), model.Room{ID: 4, RoomNo: "401", Type: model.RoomTypeDeluxe, Price: 300, Status: model.RoomStatusAvailable})
	store := repository.New(rooms, mocks.NewOtel())

	first, err := store.InsertBooking(context.Background(), model.Booking{GuestName: "John Doe", RoomID: 1})
	assert.NoError(t, err)

	second, err := store.InsertBooking(context.Background(), model.Booking{GuestName: "Jane Smith", RoomID: 4})
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}
