package usecase

import (
	"context"
	"time"

	"rabbitry/domain"
)

type userUseCase struct {
	repo    domain.UserRepo
	TimeOut time.Duration
}

func NewUserUseCase(repo domain.UserRepo, timeOut time.Duration) domain.UserUseCase {
	return &userUseCase{
		repo:    repo,
		TimeOut: timeOut,
	}
}

func (uu *userUseCase) FindUserByUsername(ctx context.Context, username string) (*domain.SafeUserData, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.TimeOut)
	defer cancel()

	v, err := uu.repo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return &domain.SafeUserData{
		UserID:    v.UserID,
		Username:  v.Username,
		Role:      v.Role,
		FarmID:    v.FarmID,
		CreatedAt: v.CreatedAt,
	}, nil
}

func (uu *userUseCase) GetAllStaff(ctx context.Context, farmID string) (*[]domain.SafeUserData, error) {
	ctx, cancel := context.WithTimeout(ctx, uu.TimeOut)
	defer cancel()

	v, err := uu.repo.GetAllStaff(ctx, farmID)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (uu *userUseCase) DeleteStaff(ctx context.Context, userID int, farmID string) error {
	ctx, cancel := context.WithTimeout(ctx, uu.TimeOut)
	defer cancel()

	err := uu.repo.DeleteStaff(ctx, userID, farmID)
	if err != nil {
		return err
	}
	return nil
}
