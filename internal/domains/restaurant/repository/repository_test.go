package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"orchid/infras/otel/mocks"
	"orchid/internal/domains/restaurant/model"
	"orchid/internal/domains/restaurant/repository"
	"orchid/shared/timezone"
)

var (
	salad  = model.MenuItem{ID: 1, Name: "Caesar Salad", Price: 12, Category: model.MenuCategoryStarter}
	salmon = model.MenuItem{ID: 4, Name: "Grilled Salmon", Price: 28, Category: model.MenuCategoryMain}
	coffee = model.MenuItem{ID: 12, Name: "Coffee", Price: 4, Category: model.MenuCategoryBeverage}
)

func newStore() repository.Restaurant {
	return repository.New([]model.MenuItem{salad, salmon, coffee}, mocks.NewOtel())
}

func TestRestaurantStore_GetMenuItem(t *testing.T) {
	store := newStore()

	item, err := store.GetMenuItem(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, "Grilled Salmon", item.Name)

	_, err = store.GetMenuItem(context.Background(), 99)
	assert.ErrorIs(t, err, repository.ErrMenuItemNotFound)
}

func TestRestaurantStore_AddLine(t *testing.T) {
	store := newStore()
	ctx := context.Background()

	lines, err := store.AddLine(ctx, salad)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)

	// Same item again increments the existing line.
	lines, err = store.AddLine(ctx, salad)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	// Different item appends, preserving line order.
	lines, err = store.AddLine(ctx, coffee)
	assert.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, salad.ID, lines[0].MenuItem.ID)
	assert.Equal(t, coffee.ID, lines[1].MenuItem.ID)
}

func TestRestaurantStore_AdjustLine(t *testing.T) {
	ctx := context.Background()

	t.Run("positive delta raises quantity", func(t *testing.T) {
		store := newStore()
		_, _ = store.AddLine(ctx, salad)

		lines, err := store.AdjustLine(ctx, salad.ID, 2)
		assert.NoError(t, err)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("delta to zero removes the line", func(t *testing.T) {
		store := newStore()
		_, _ = store.AddLine(ctx, salad)
		_, _ = store.AddLine(ctx, coffee)

		lines, err := store.AdjustLine(ctx, salad.ID, -1)
		assert.NoError(t, err)
		assert.Len(t, lines, 1)
		assert.Equal(t, coffee.ID, lines[0].MenuItem.ID)
	})

	t.Run("delta below zero floors at removal", func(t *testing.T) {
		store := newStore()
		_, _ = store.AddLine(ctx, salad)

		lines, err := store.AdjustLine(ctx, salad.ID, -5)
		assert.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store := newStore()
		_, _ = store.AddLine(ctx, salad)

		lines, err := store.AdjustLine(ctx, 99, 1)
		assert.NoError(t, err)
		assert.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})
}

func TestRestaurantStore_FinalizeCart(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart rejected", func(t *testing.T) {
		store := newStore()

		_, err := store.FinalizeCart(ctx, "John Doe", timezone.Now())
		assert.ErrorIs(t, err, repository.ErrEmptyCart)
	})

	t.Run("order snapshots and clears the cart", func(t *testing.T) {
		store := newStore()
		_, _ = store.AddLine(ctx, salad)
		_, _ = store.AddLine(ctx, salad)
		_, _ = store.AddLine(ctx, salmon)

		order, err := store.FinalizeCart(ctx, "John Doe", timezone.Now())
		assert.NoError(t, err)
		assert.Equal(t, int64(1), order.ID)
		assert.Equal(t, "John Doe", order.GuestName)
		assert.Len(t, order.Items, 2)
		assert.Equal(t, float64(2*12+28), order.Total)

		cart, err := store.GetCart(ctx)
		assert.NoError(t, err)
		assert.Empty(t, cart)

		orders, err := store.GetOrders(ctx)
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("later cart activity does not mutate a placed order", func(t *testing.T) {
		store := newStore()
		_, _ = store.AddLine(ctx, salad)

		order, err := store.FinalizeCart(ctx, "John Doe", timezone.Now())
		assert.NoError(t, err)

		_, _ = store.AddLine(ctx, coffee)
		_, _ = store.AddLine(ctx, coffee)

		orders, err := store.GetOrders(ctx)
		assert.NoError(t, err)
		assert.Equal(t, order.Items, orders[0].Items)
		assert.Equal(t, float64(12), orders[0].Total)
	})

	t.Run("order ids are sequential", func(t *testing.T) {
		store := newStore()

		_, _ = store.AddLine(ctx, salad)
		first, err := store.FinalizeCart(ctx, "John Doe", timezone.Now())
		assert.NoError(t, err)

		_, _ = store.AddLine(ctx, coffee)
		second, err := store.FinalizeCart(ctx, "Jane Smith", timezone.Now())
		assert.NoError(t, err)

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})
}
