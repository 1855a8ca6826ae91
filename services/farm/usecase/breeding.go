package usecase

import (
	"context"
	"time"

	"rabbitry/domain"
)

type breedingUseCase struct {
	repo     domain.BreedingRepo
	notifier domain.CullingNotifier
	TimeOut  time.Duration
}

func NewBreedingUseCase(repo domain.BreedingRepo, notifier domain.CullingNotifier, timeOut time.Duration) domain.BreedingUseCase {
	return &breedingUseCase{
		repo:     repo,
		notifier: notifier,
		TimeOut:  timeOut,
	}
}

func (bu *breedingUseCase) CreateBreedingRecord(ctx context.Context, payload *domain.BreedingRecord) (*domain.BreedingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	v, err := bu.repo.CreateBreedingRecord(ctx, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (bu *breedingUseCase) UpdateBreedingRecord(ctx context.Context, id, farmID string, payload *domain.BreedingUpdatePayload) (*domain.BreedingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	v, err := bu.repo.UpdateBreedingRecord(ctx, id, farmID, payload)
	if err != nil {
		return nil, err
	}

	// The alert row is already committed; the email is best effort.
	if v.CullingAdvice != "" && bu.notifier != nil {
		bu.notifier.NotifyCulling(farmID, v.DoeID, v.CullingAdvice)
	}

	return v, nil
}

func (bu *breedingUseCase) DeleteBreedingRecord(ctx context.Context, id, farmID string) error {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	err := bu.repo.DeleteBreedingRecord(ctx, id, farmID)
	if err != nil {
		return err
	}
	return nil
}

func (bu *breedingUseCase) GetBreedingRecordByID(ctx context.Context, id, farmID string) (*domain.BreedingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	v, err := bu.repo.GetBreedingRecordByID(ctx, id, farmID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (bu *breedingUseCase) GetAllBreedingRecords(ctx context.Context, farmID string) (*[]domain.BreedingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	v, err := bu.repo.GetAllBreedingRecords(ctx, farmID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (bu *breedingUseCase) GetCullingAlerts(ctx context.Context, farmID string) (*[]domain.CullingAlert, error) {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	v, err := bu.repo.GetCullingAlerts(ctx, farmID)
	if err != nil {
		return nil, err
	}
	return v, nil
}
