package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"orchid/infras/otel"
	"orchid/internal/domains/restaurant/model"
	"orchid/shared/constant"
)

var (
	// ErrMenuItemNotFound is returned when a menu item id does not resolve.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrEmptyCart is returned when the cart is finalized with no lines.
	ErrEmptyCart = errors.New("cart is empty")
)

type Restaurant interface {
	GetMenu(ctx context.Context) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id int64) (model.MenuItem, error)
	GetCart(ctx context.Context) ([]model.OrderLine, error)
	AddLine(ctx context.Context, item model.MenuItem) ([]model.OrderLine, error)
	AdjustLine(ctx context.Context, menuItemID int64, delta int) ([]model.OrderLine, error)
	FinalizeCart(ctx context.Context, guestName string, timestamp time.Time) (model.Order, error)
	GetOrders(ctx context.Context) ([]model.Order, error)
}

// storeImpl owns the read-only menu, the single pending cart, and the
// append-only order log.
type storeImpl struct {
	mu       sync.RWMutex
	menu     []model.MenuItem
	cart     []model.OrderLine
	orders   []model.Order
	sequence int64
	otel     otel.Otel
}

func New(menu []model.MenuItem, otel otel.Otel) Restaurant {
	return &storeImpl{
		menu: menu,
		otel: otel,
	}
}

func (s *storeImpl) GetMenu(ctx context.Context) ([]model.MenuItem, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetMenu")
	defer scope.End()

	menu := make([]model.MenuItem, len(s.menu))
	copy(menu, s.menu)

	return menu, nil
}

func (s *storeImpl) GetMenuItem(ctx context.Context, id int64) (model.MenuItem, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetMenuItem")
	defer scope.End()

	for _, item := range s.menu {
		if item.ID == id {
			return item, nil
		}
	}

	return model.MenuItem{}, ErrMenuItemNotFound
}

func (s *storeImpl) GetCart(ctx context.Context) ([]model.OrderLine, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetCart")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyCartLocked(), nil
}

// AddLine increments the quantity of an existing line for the item, or
// appends a new line with quantity one. Line order is preserved.
func (s *storeImpl) AddLine(ctx context.Context, item model.MenuItem) ([]model.OrderLine, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".AddLine")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].MenuItem.ID == item.ID {
			s.cart[i].Quantity++

			return s.copyCartLocked(), nil
		}
	}

	s.cart = append(s.cart, model.OrderLine{MenuItem: item, Quantity: 1})

	return s.copyCartLocked(), nil
}

// AdjustLine adds delta to the matching line's quantity, floored at zero.
// A line at zero is removed. Unknown ids are a no-op.
func (s *storeImpl) AdjustLine(ctx context.Context, menuItemID int64, delta int) ([]model.OrderLine, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".AdjustLine")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].MenuItem.ID != menuItemID {
			continue
		}

		s.cart[i].Quantity = max(0, s.cart[i].Quantity+delta)
		if s.cart[i].Quantity == 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		}

		break
	}

	return s.copyCartLocked(), nil
}

// FinalizeCart snapshots the cart lines into a new order, clears the cart and
// appends the order, all under one lock. The snapshot does not alias the
// cart slice.
func (s *storeImpl) FinalizeCart(ctx context.Context, guestName string, timestamp time.Time) (model.Order, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".FinalizeCart")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		scope.TraceError(ErrEmptyCart)

		return model.Order{}, ErrEmptyCart
	}

	items := make([]model.OrderLine, len(s.cart))
	copy(items, s.cart)

	s.sequence++
	order := model.Order{
		ID:        s.sequence,
		GuestName: guestName,
		Items:     items,
		Total:     model.CartTotal(items),
		Timestamp: timestamp,
	}

	s.orders = append(s.orders, order)
	s.cart = nil

	return order, nil
}

func (s *storeImpl) GetOrders(ctx context.Context) ([]model.Order, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetOrders")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)

	return orders, nil
}

func (s *storeImpl) copyCartLocked() []model.OrderLine {
	cart := make([]model.OrderLine, len(s.cart))
	copy(cart, s.cart)

	return cart
}
