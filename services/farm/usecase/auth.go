package usecase

import (
	"context"
	"time"

	"rabbitry/domain"
)

type authUseCase struct {
	repo    domain.AuthRepo
	TimeOut time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUseCase{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (au *authUseCase) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	v, err := au.repo.Login(ctx, data)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (au *authUseCase) Register(ctx context.Context, data *domain.RegisterRequest, actorRole string) (*domain.SafeUserData, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	v, err := au.repo.Register(ctx, data, actorRole)
	if err != nil {
		return nil, err
	}
	return v, nil
}
