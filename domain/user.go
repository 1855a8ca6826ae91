package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type User struct {
	UserID    int            `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username  string         `gorm:"type:varchar(50);not null;unique" json:"username" valid:"required~Username is required"`
	Password  string         `gorm:"type:varchar(100);not null" json:"password" valid:"required~Password is required"`
	Role      string         `gorm:"type:varchar(30);not null" json:"role" valid:"required~Role is required"`
	FarmID    string         `gorm:"type:varchar(36);index" json:"farm_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// SafeUserData is the user projection without the password hash.
type SafeUserData struct {
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FarmID    string    `json:"farm_id"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRepo interface {
	FindUserByUsername(ctx context.Context, username string) (*User, error)
	GetAllStaff(ctx context.Context, farmID string) (*[]SafeUserData, error)
	DeleteStaff(ctx context.Context, userID int, farmID string) error
}

type UserUseCase interface {
	FindUserByUsername(ctx context.Context, username string) (*SafeUserData, error)
	GetAllStaff(ctx context.Context, farmID string) (*[]SafeUserData, error)
	DeleteStaff(ctx context.Context, userID int, farmID string) error
}
