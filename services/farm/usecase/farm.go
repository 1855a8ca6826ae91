package usecase

import (
	"context"
	"time"

	"rabbitry/domain"
)

type farmUseCase struct {
	repo    domain.FarmRepo
	TimeOut time.Duration
}

func NewFarmUseCase(repo domain.FarmRepo, timeOut time.Duration) domain.FarmUseCase {
	return &farmUseCase{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (fu *farmUseCase) CreateFarm(ctx context.Context, payload *domain.Farm) (*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	v, err := fu.repo.CreateFarm(ctx, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (fu *farmUseCase) GetFarmByID(ctx context.Context, farmID string) (*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	v, err := fu.repo.GetFarmByID(ctx, farmID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (fu *farmUseCase) GetAllFarms(ctx context.Context, ownerID int) (*[]domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	v, err := fu.repo.GetAllFarms(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (fu *farmUseCase) UpdateFarm(ctx context.Context, farmID string, payload *domain.Farm) (*domain.Farm, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	v, err := fu.repo.UpdateFarm(ctx, farmID, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (fu *farmUseCase) DeleteFarm(ctx context.Context, farmID string, ownerID int) error {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	err := fu.repo.DeleteFarm(ctx, farmID, ownerID)
	if err != nil {
		return err
	}
	return nil
}
