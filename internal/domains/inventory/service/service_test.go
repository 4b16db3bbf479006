package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"orchid/infras/otel/mocks"
	storeMocks "orchid/internal/domains/inventory/mocks"
	"orchid/internal/domains/inventory/model"
	"orchid/internal/domains/inventory/model/dto"
	"orchid/internal/domains/inventory/repository"
	"orchid/internal/domains/inventory/service"
	"orchid/shared/failure"
)

func TestInventoryService_GetRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockInventory(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockStore, mockOtel)

	rooms := []model.Room{
		{ID: 1, RoomNo: "101", Type: model.RoomTypeSingle, Price: 80, Status: model.RoomStatusAvailable},
		{ID: 2, RoomNo: "102", Type: model.RoomTypeSingle, Price: 80, Status: model.RoomStatusOccupied},
	}

	mockStore.EXPECT().
		GetRooms(gomock.Any()).
		Return(rooms, nil)

	res, err := svc.GetRooms(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "101", res.Rooms[0].RoomNo)
	assert.Equal(t, string(model.RoomStatusOccupied), res.Rooms[1].Status)
}

func TestInventoryService_CreateBooking(t *testing.T) {
	availableRoom := model.Room{
		ID:     1,
		RoomNo: "101",
		Type:   model.RoomTypeSingle,
		Price:  80,
		Status: model.RoomStatusAvailable,
	}

	validReq := dto.CreateBookingRequest{
		RoomID:    1,
		GuestName: "John Doe",
		CheckIn:   "2026-09-01",
		CheckOut:  "2026-09-03",
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(mockStore *storeMocks.MockInventory)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func(mockStore *storeMocks.MockInventory) {
				mockStore.EXPECT().
					GetRoom(gomock.Any(), int64(1)).
					Return(availableRoom, nil)

				mockStore.EXPECT().
					InsertBooking(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
						booking.ID = 1
						return booking, nil
					})
			},
			wantErr: false,
		},
		{
			name: "unknown room",
			req: dto.CreateBookingRequest{
				RoomID:    99,
				GuestName: "John Doe",
				CheckIn:   "2026-09-01",
				CheckOut:  "2026-09-03",
			},
			setupMock: func(mockStore *storeMocks.MockInventory) {
				mockStore.EXPECT().
					GetRoom(gomock.Any(), int64(99)).
					Return(model.Room{}, repository.ErrRoomNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room not available",
			req:  validReq,
			setupMock: func(mockStore *storeMocks.MockInventory) {
				mockStore.EXPECT().
					GetRoom(gomock.Any(), int64(1)).
					Return(availableRoom, nil)

				mockStore.EXPECT().
					InsertBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, repository.ErrRoomUnavailable)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "store failure",
			req:  validReq,
			setupMock: func(mockStore *storeMocks.MockInventory) {
				mockStore.EXPECT().
					GetRoom(gomock.Any(), int64(1)).
					Return(availableRoom, nil)

				mockStore.EXPECT().
					InsertBooking(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("store blew up"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := storeMocks.NewMockInventory(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockStore, mockOtel)

			tt.setupMock(mockStore)

			res, err := svc.CreateBooking(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, "101", res.RoomNo)
			assert.Equal(t, "John Doe", res.GuestName)
		})
	}
}

func TestInventoryService_GetBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockInventory(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockStore, mockOtel)

	bookings := []model.Booking{
		{ID: 1, GuestName: "John Doe", RoomNo: "101", RoomID: 1},
		{ID: 2, GuestName: "Jane Smith", RoomNo: "201", RoomID: 3},
	}

	mockStore.EXPECT().
		GetBookings(gomock.Any()).
		Return(bookings, nil)

	res, err := svc.GetBookings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "Jane Smith", res.Bookings[1].GuestName)
}
