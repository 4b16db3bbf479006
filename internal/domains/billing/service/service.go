package service

import (
	"context"
	"fmt"

	"orchid/infras/otel"
	"orchid/internal/domains/billing/model/dto"
	"orchid/internal/domains/billing/repository"
	"orchid/shared/constant"
	"orchid/shared/failure"

	"github.com/rs/zerolog/log"
)

type Billing interface {
	Generate(ctx context.Context, req dto.GenerateBillRequest) (dto.BillResponse, error)
	GetAll(ctx context.Context) (dto.GetBillsResponse, error)
}

type serviceImpl struct {
	store repository.Billing
	otel  otel.Otel
}

func New(store repository.Billing, otel otel.Otel) Billing {
	return &serviceImpl{
		store: store,
		otel:  otel,
	}
}

func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Nights < 1 {
		return res, failure.BadRequestFromString("nights must be greater than or equal to 1") // nolint:wrapcheck
	}

	bill, err := s.store.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to insert bill")

		return res, fmt.Errorf("failed to insert bill: %w", err)
	}

	scope.AddEvent("Bill generated for room " + bill.RoomNo)

	res.FromModel(bill)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBillsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBills")
	defer scope.End()
	defer scope.TraceIfError(err)

	bills, err := s.store.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bills")

		return res, fmt.Errorf("failed to get bills: %w", err)
	}

	res.FromModels(bills)

	return res, nil
}
