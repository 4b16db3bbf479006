package service

import (
	"context"
	"errors"
	"fmt"

	"orchid/infras/otel"
	"orchid/internal/domains/restaurant/model"
	"orchid/internal/domains/restaurant/model/dto"
	"orchid/internal/domains/restaurant/repository"
	"orchid/shared/constant"
	"orchid/shared/failure"
	"orchid/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Restaurant interface {
	GetMenu(ctx context.Context, category string) (dto.GetMenuResponse, error)
	GetCart(ctx context.Context) (dto.CartResponse, error)
	AddItem(ctx context.Context, req dto.AddCartItemRequest) (dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, menuItemID int64, req dto.UpdateCartItemRequest) (dto.CartResponse, error)
	PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (dto.OrderResponse, error)
	GetOrders(ctx context.Context) (dto.GetOrdersResponse, error)
}

type serviceImpl struct {
	store repository.Restaurant
	otel  otel.Otel
}

func New(store repository.Restaurant, otel otel.Otel) Restaurant {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) GetMenu(ctx context.Context, category string) (res dto.GetMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	if category != constant.Empty && !model.MenuCategory(category).Valid() {
		return res, failure.BadRequestFromString("category must be one of Starter Main Dessert Beverage") // nolint:wrapcheck
	}

	items, err := s.store.GetMenu(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu")

		return res, fmt.Errorf("failed to get menu: %w", err)
	}

	if category != constant.Empty {
		filtered := items[:0]
		for _, item := range items {
			if item.Category == model.MenuCategory(category) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	res.FromModels(items)

	return res, nil
}

func (s *serviceImpl) GetCart(ctx context.Context) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCart")
	defer scope.End()
	defer scope.TraceIfError(err)

	lines, err := s.store.GetCart(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cart")

		return res, fmt.Errorf("failed to get cart: %w", err)
	}

	res.FromModels(lines)

	return res, nil
}

func (s *serviceImpl) AddItem(ctx context.Context, req dto.AddCartItemRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.store.GetMenuItem(ctx, req.MenuItemID)
	if err != nil {
		log.Error().Err(err).Int64("menuItemID", req.MenuItemID).Msg("cart add references an unknown menu item")

		return res, failure.NotFound(model.MenuEntityName + " not found") // nolint:wrapcheck
	}

	lines, err := s.store.AddLine(ctx, item)
	if err != nil {
		log.Error().Err(err).Msg("failed to add cart line")

		return res, fmt.Errorf("failed to add cart line: %w", err)
	}

	res.FromModels(lines)

	return res, nil
}

// UpdateQuantity is a no-op for menu item ids that have no cart line.
func (s *serviceImpl) UpdateQuantity(ctx context.Context, menuItemID int64, req dto.UpdateCartItemRequest) (res dto.CartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateQuantity")
	defer scope.End()
	defer scope.TraceIfError(err)

	lines, err := s.store.AdjustLine(ctx, menuItemID, req.Delta)
	if err != nil {
		log.Error().Err(err).Msg("failed to adjust cart line")

		return res, fmt.Errorf("failed to adjust cart line: %w", err)
	}

	res.FromModels(lines)

	return res, nil
}

func (s *serviceImpl) PlaceOrder(ctx context.Context, req dto.PlaceOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PlaceOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.store.FinalizeCart(ctx, req.GuestName, timezone.Now())
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCart) {
			return res, failure.EmptyCart // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to place order")

		return res, fmt.Errorf("failed to place order: %w", err)
	}

	scope.AddEvent("Order placed for " + order.GuestName)

	res.FromModel(order)

	return res, nil
}

func (s *serviceImpl) GetOrders(ctx context.Context) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrders")
	defer scope.End()
	defer scope.TraceIfError(err)

	orders, err := s.store.GetOrders(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get orders")

		return res, fmt.Errorf("failed to get orders: %w", err)
	}

	res.FromModels(orders)

	return res, nil
}
