package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Farm struct {
	FarmID    string         `gorm:"type:varchar(36);primaryKey" json:"farm_id"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name" valid:"required~Farm name is required"`
	Location  string         `gorm:"type:varchar(150)" json:"location"`
	OwnerID   int            `gorm:"not null;index" json:"owner_id"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type FarmRepo interface {
	CreateFarm(ctx context.Context, payload *Farm) (*Farm, error)
	GetFarmByID(ctx context.Context, farmID string) (*Farm, error)
	GetAllFarms(ctx context.Context, ownerID int) (*[]Farm, error)
	UpdateFarm(ctx context.Context, farmID string, payload *Farm) (*Farm, error)
	DeleteFarm(ctx context.Context, farmID string, ownerID int) error
}

type FarmUseCase interface {
	CreateFarm(ctx context.Context, payload *Farm) (*Farm, error)
	GetFarmByID(ctx context.Context, farmID string) (*Farm, error)
	GetAllFarms(ctx context.Context, ownerID int) (*[]Farm, error)
	UpdateFarm(ctx context.Context, farmID string, payload *Farm) (*Farm, error)
	DeleteFarm(ctx context.Context, farmID string, ownerID int) error
}
