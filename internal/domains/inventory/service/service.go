package service

import (
	"context"
	"errors"
	"fmt"

	"orchid/infras/otel"
	"orchid/internal/domains/inventory/model/dto"
	"orchid/internal/domains/inventory/repository"
	"orchid/shared/constant"
	"orchid/shared/failure"

	"github.com/rs/zerolog/log"
)

type Inventory interface {
	GetRooms(ctx context.Context) (dto.GetRoomsResponse, error)
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetBookings(ctx context.Context) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	store repository.Inventory
	otel  otel.Otel
}

func New(store repository.Inventory, otel otel.Otel) Inventory {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) GetRooms(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	rooms, err := s.store.GetRooms(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms)

	return res, nil
}

func (s *serviceImpl) CreateBooking(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.store.GetRoom(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Int64("roomID", req.RoomID).Msg("booking references an unknown room")

		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	booking, err := s.store.InsertBooking(ctx, req.ToModel(room.RoomNo))
	if err != nil {
		if errors.Is(err, repository.ErrRoomUnavailable) {
			log.Warn().Str("roomNo", room.RoomNo).Msg("rejected booking for a non-available room")

			return res, failure.RoomUnavailable // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	scope.AddEvent("Room " + booking.RoomNo + " booked")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetBookings(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.store.GetBookings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}
