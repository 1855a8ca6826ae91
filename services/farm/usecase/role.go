package usecase

import (
	"context"
	"time"

	"rabbitry/domain"
)

type roleUseCase struct {
	repo    domain.RoleRepo
	TimeOut time.Duration
}

func NewRoleUseCase(repo domain.RoleRepo, timeOut time.Duration) domain.RoleUseCase {
	return &roleUseCase{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (ru *roleUseCase) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	v, err := ru.repo.GetRoleByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (ru *roleUseCase) GetAllRoles(ctx context.Context) (*[]domain.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	v, err := ru.repo.GetAllRoles(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}
