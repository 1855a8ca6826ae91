package usecase

import (
	"context"
	"time"

	"rabbitry/domain"
)

type rabbitUseCase struct {
	repo    domain.RabbitRepo
	TimeOut time.Duration
}

func NewRabbitUseCase(repo domain.RabbitRepo, timeOut time.Duration) domain.RabbitUseCase {
	return &rabbitUseCase{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (ru *rabbitUseCase) CreateRabbit(ctx context.Context, payload *domain.Rabbit) (*domain.Rabbit, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	v, err := ru.repo.CreateRabbit(ctx, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ru *rabbitUseCase) GetRabbitByID(ctx context.Context, rabbitID, farmID string) (*domain.Rabbit, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	v, err := ru.repo.GetRabbitByID(ctx, rabbitID, farmID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ru *rabbitUseCase) GetAllRabbits(ctx context.Context, farmID string) (*[]domain.Rabbit, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	v, err := ru.repo.GetAllRabbits(ctx, farmID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ru *rabbitUseCase) UpdateRabbit(ctx context.Context, rabbitID, farmID string, payload *domain.Rabbit) (*domain.Rabbit, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	v, err := ru.repo.UpdateRabbit(ctx, rabbitID, farmID, payload)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ru *rabbitUseCase) DeleteRabbit(ctx context.Context, rabbitID, farmID string) error {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	err := ru.repo.DeleteRabbit(ctx, rabbitID, farmID)
	if err != nil {
		return err
	}
	return nil
}
