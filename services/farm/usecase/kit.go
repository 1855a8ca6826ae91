package usecase

import (
	"context"
	"time"

	"rabbitry/domain"
)

type kitUseCase struct {
	repo    domain.KitRepo
	TimeOut time.Duration
}

func NewKitUseCase(repo domain.KitRepo, timeOut time.Duration) domain.KitUseCase {
	return &kitUseCase{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (ku *kitUseCase) CreateKitRecord(ctx context.Context, payload *domain.KitRecord) (*domain.KitRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	v, err := ku.repo.CreateKitRecord(ctx, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ku *kitUseCase) UpdateKitRecord(ctx context.Context, kitID string, payload *domain.KitUpdatePayload) (*domain.KitRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	v, err := ku.repo.UpdateKitRecord(ctx, kitID, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ku *kitUseCase) GetKitRecordByID(ctx context.Context, kitID string) (*domain.KitRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, ku.TimeOut)
	defer cancel()

	v, err := ku.repo.GetKitRecordByID(ctx, kitID)
	if err != nil {
		return nil, err
	}
	return v, nil
}
