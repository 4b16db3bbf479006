package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"orchid/infras/otel"
	"orchid/internal/domains/guest/model"
	"orchid/shared/constant"
)

type Guest interface {
	GetAll(ctx context.Context) ([]model.Guest, error)
}

type storeImpl struct {
	guests []model.Guest
	otel   otel.Otel
}

func New(guests []model.Guest, otel otel.Otel) Guest {
	return &storeImpl{
		guests: guests,
		otel:   otel,
	}
}

func (s *storeImpl) GetAll(ctx context.Context) ([]model.Guest, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".GetAllGuests")
	defer scope.End()

	guests := make([]model.Guest, len(s.guests))
	copy(guests, s.guests)

	return guests, nil
}
