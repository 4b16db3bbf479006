package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"orchid/infras/otel/mocks"
	"orchid/internal/domains/billing/model"
	"orchid/internal/domains/billing/repository"
	"orchid/shared/timezone"
)

func TestBillingStore_Insert(t *testing.T) {
	store := repository.New(mocks.NewOtel())
	ctx := context.Background()

	first, err := store.Insert(ctx, model.Bill{
		GuestName:  "John Doe",
		RoomNo:     "101",
		Nights:     3,
		RoomCharge: 240,
		Services:   20,
		Total:      260,
		Date:       timezone.Now(),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := store.Insert(ctx, model.Bill{GuestName: "Jane Smith", RoomNo: "201", Nights: 1, Total: 120})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	bills, err := store.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, bills, 2)
	assert.Equal(t, float64(260), bills[0].Total)
}

func TestBillingStore_GetAllReturnsCopy(t *testing.T) {
	store := repository.New(mocks.NewOtel())
	ctx := context.Background()

	_, err := store.Insert(ctx, model.Bill{GuestName: "John Doe", RoomNo: "101", Total: 80})
	assert.NoError(t, err)

	bills, err := store.GetAll(ctx)
	assert.NoError(t, err)

	bills[0].Total = 0

	again, err := store.GetAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, float64(80), again[0].Total)
}
