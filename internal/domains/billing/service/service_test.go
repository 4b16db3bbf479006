package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"orchid/infras/otel/mocks"
	storeMocks "orchid/internal/domains/billing/mocks"
	"orchid/internal/domains/billing/model"
	"orchid/internal/domains/billing/model/dto"
	"orchid/internal/domains/billing/service"
	"orchid/shared/failure"
)

func TestBillingService_Generate(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.GenerateBillRequest
		setupMock  func(mockStore *storeMocks.MockBilling)
		wantErr    bool
		wantCode   int
		wantCharge float64
		wantTotal  float64
	}{
		{
			name: "room charge plus services",
			req: dto.GenerateBillRequest{
				GuestName: "John Doe",
				RoomNo:    "101",
				Nights:    3,
				RoomPrice: 80,
				Services:  20,
			},
			setupMock: func(mockStore *storeMocks.MockBilling) {
				mockStore.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, bill model.Bill) (model.Bill, error) {
						bill.ID = 1
						return bill, nil
					})
			},
			wantCharge: 240,
			wantTotal:  260,
		},
		{
			name: "zero price and services",
			req: dto.GenerateBillRequest{
				GuestName: "Jane Smith",
				RoomNo:    "201",
				Nights:    2,
			},
			setupMock: func(mockStore *storeMocks.MockBilling) {
				mockStore.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, bill model.Bill) (model.Bill, error) {
						bill.ID = 2
						return bill, nil
					})
			},
			wantCharge: 0,
			wantTotal:  0,
		},
		{
			name: "negative services pass through",
			req: dto.GenerateBillRequest{
				GuestName: "Mike Johnson",
				RoomNo:    "301",
				Nights:    1,
				RoomPrice: 200,
				Services:  -50,
			},
			setupMock: func(mockStore *storeMocks.MockBilling) {
				mockStore.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, bill model.Bill) (model.Bill, error) {
						bill.ID = 3
						return bill, nil
					})
			},
			wantCharge: 200,
			wantTotal:  150,
		},
		{
			name: "zero nights rejected",
			req: dto.GenerateBillRequest{
				GuestName: "John Doe",
				RoomNo:    "101",
				Nights:    0,
				RoomPrice: 80,
			},
			setupMock: func(mockStore *storeMocks.MockBilling) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store failure",
			req: dto.GenerateBillRequest{
				GuestName: "John Doe",
				RoomNo:    "101",
				Nights:    1,
				RoomPrice: 80,
			},
			setupMock: func(mockStore *storeMocks.MockBilling) {
				mockStore.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(model.Bill{}, errors.New("store blew up"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := storeMocks.NewMockBilling(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockStore, mockOtel)

			tt.setupMock(mockStore)

			res, err := svc.Generate(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCharge, res.RoomCharge)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.req.GuestName, res.GuestName)
		})
	}
}

func TestBillingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockBilling(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockStore, mockOtel)

	bills := []model.Bill{
		{ID: 1, GuestName: "John Doe", RoomNo: "101", Nights: 2, RoomCharge: 160, Total: 160},
		{ID: 2, GuestName: "Jane Smith", RoomNo: "201", Nights: 1, RoomCharge: 120, Services: 30, Total: 150},
	}

	mockStore.EXPECT().
		GetAll(gomock.Any()).
		Return(bills, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, float64(150), res.Bills[1].Total)
}
