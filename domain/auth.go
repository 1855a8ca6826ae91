package domain

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

type LoginRequest struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
	Role     string `json:"role" valid:"required~Role is required"`
	FarmID   string `json:"farm_id"`
}

type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	FarmID   string `json:"farm_id"`
	jwt.RegisteredClaims
}

type AuthRepo interface {
	Login(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, data *RegisterRequest, actorRole string) (*SafeUserData, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, data *RegisterRequest, actorRole string) (*SafeUserData, error)
}
