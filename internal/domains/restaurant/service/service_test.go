package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"orchid/infras/otel/mocks"
	storeMocks "orchid/internal/domains/restaurant/mocks"
	"orchid/internal/domains/restaurant/model"
	"orchid/internal/domains/restaurant/model/dto"
	"orchid/internal/domains/restaurant/repository"
	"orchid/internal/domains/restaurant/service"
	"orchid/shared/failure"
	"orchid/shared/timezone"
)

var menu = []model.MenuItem{
	{ID: 1, Name: "Caesar Salad", Price: 12, Category: model.MenuCategoryStarter},
	{ID: 4, Name: "Grilled Salmon", Price: 28, Category: model.MenuCategoryMain},
	{ID: 12, Name: "Coffee", Price: 4, Category: model.MenuCategoryBeverage},
}

func TestRestaurantService_GetMenu(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		setupMock func(mockStore *storeMocks.MockRestaurant)
		wantErr   bool
		wantItems int
	}{
		{
			name:     "whole menu",
			category: "",
			setupMock: func(mockStore *storeMocks.MockRestaurant) {
				mockStore.EXPECT().
					GetMenu(gomock.Any()).
					Return(menu, nil)
			},
			wantItems: 3,
		},
		{
			name:     "filtered by category",
			category: "Main",
			setupMock: func(mockStore *storeMocks.MockRestaurant) {
				mockStore.EXPECT().
					GetMenu(gomock.Any()).
					Return(menu, nil)
			},
			wantItems: 1,
		},
		{
			name:      "unknown category",
			category:  "Brunch",
			setupMock: func(mockStore *storeMocks.MockRestaurant) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := storeMocks.NewMockRestaurant(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockStore, mockOtel)

			tt.setupMock(mockStore)

			res, err := svc.GetMenu(context.Background(), tt.category)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantItems, res.TotalData)
		})
	}
}

func TestRestaurantService_AddItem(t *testing.T) {
	coffee := model.MenuItem{ID: 12, Name: "Coffee", Price: 4, Category: model.MenuCategoryBeverage}

	tests := []struct {
		name      string
		req       dto.AddCartItemRequest
		setupMock func(mockStore *storeMocks.MockRestaurant)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "item added",
			req:  dto.AddCartItemRequest{MenuItemID: 12},
			setupMock: func(mockStore *storeMocks.MockRestaurant) {
				mockStore.EXPECT().
					GetMenuItem(gomock.Any(), int64(12)).
					Return(coffee, nil)

				mockStore.EXPECT().
					AddLine(gomock.Any(), coffee).
					Return([]model.OrderLine{{MenuItem: coffee, Quantity: 1}}, nil)
			},
		},
		{
			name: "unknown menu item",
			req:  dto.AddCartItemRequest{MenuItemID: 99},
			setupMock: func(mockStore *storeMocks.MockRestaurant) {
				mockStore.EXPECT().
					GetMenuItem(gomock.Any(), int64(99)).
					Return(model.MenuItem{}, repository.ErrMenuItemNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := storeMocks.NewMockRestaurant(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockStore, mockOtel)

			tt.setupMock(mockStore)

			res, err := svc.AddItem(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Lines, 1)
			assert.Equal(t, float64(4), res.Total)
		})
	}
}

func TestRestaurantService_UpdateQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockRestaurant(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockStore, mockOtel)

	salad := model.MenuItem{ID: 1, Name: "Caesar Salad", Price: 12, Category: model.MenuCategoryStarter}

	mockStore.EXPECT().
		AdjustLine(gomock.Any(), int64(1), 2).
		Return([]model.OrderLine{{MenuItem: salad, Quantity: 3}}, nil)

	res, err := svc.UpdateQuantity(context.Background(), 1, dto.UpdateCartItemRequest{Delta: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Lines[0].Quantity)
	assert.Equal(t, float64(36), res.Total)
}

func TestRestaurantService_PlaceOrder(t *testing.T) {
	salad := model.MenuItem{ID: 1, Name: "Caesar Salad", Price: 12, Category: model.MenuCategoryStarter}

	tests := []struct {
		name      string
		req       dto.PlaceOrderRequest
		setupMock func(mockStore *storeMocks.MockRestaurant)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "order placed",
			req:  dto.PlaceOrderRequest{GuestName: "John Doe"},
			setupMock: func(mockStore *storeMocks.MockRestaurant) {
				mockStore.EXPECT().
					FinalizeCart(gomock.Any(), "John Doe", gomock.Any()).
					Return(model.Order{
						ID:        1,
						GuestName: "John Doe",
						Items:     []model.OrderLine{{MenuItem: salad, Quantity: 2}},
						Total:     24,
						Timestamp: timezone.Now(),
					}, nil)
			},
		},
		{
			name: "empty cart rejected",
			req:  dto.PlaceOrderRequest{GuestName: "John Doe"},
			setupMock: func(mockStore *storeMocks.MockRestaurant) {
				mockStore.EXPECT().
					FinalizeCart(gomock.Any(), "John Doe", gomock.Any()).
					Return(model.Order{}, repository.ErrEmptyCart)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := storeMocks.NewMockRestaurant(ctrl)
			mockOtel := mocks.NewOtel()

			svc := service.New(mockStore, mockOtel)

			tt.setupMock(mockStore)

			res, err := svc.PlaceOrder(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, float64(24), res.Total)
			assert.Len(t, res.Items, 1)
		})
	}
}

func TestRestaurantService_GetOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storeMocks.NewMockRestaurant(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockStore, mockOtel)

	orders := []model.Order{
		{ID: 1, GuestName: "John Doe", Total: 24, Timestamp: timezone.Now()},
		{ID: 2, GuestName: "Jane Smith", Total: 12, Timestamp: timezone.Now()},
	}

	mockStore.EXPECT().
		GetOrders(gomock.Any()).
		Return(orders, nil)

	res, err := svc.GetOrders(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "Jane Smith", res.Orders[1].GuestName)
}
