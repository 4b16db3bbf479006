package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"sync"

	"orchid/infras/otel"
	"orchid/internal/domains/billing/model"
	"orchid/shared/constant"
)

type Billing interface {
	Insert(ctx context.Context, bill model.Bill) (model.Bill, error)
	GetAll(ctx context.Context) ([]model.Bill, error)
}

// storeImpl owns the append-only bill log.
type storeImpl struct {
	mu       sync.RWMutex
	bills    []model.Bill
	sequence int64
	otel     otel.Otel
}

func New(otel otel.Otel) Billing {
	return &storeImpl{
		otel: otel,
	}
}

func (s *storeImpl) Insert(ctx context.Context, bill model.Bill) (model.Bill, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".InsertBill")
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequence++
	bill.ID = s.sequence
	s.bills = append(s.bills, bill)

	return bill, nil
}

func (s *storeImpl) GetAll(ctx context.Context) ([]model.Bill, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetAllBills")
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	bills := make([]model.Bill, len(s.bills))
	copy(bills, s.bills)

	return bills, nil
}
