package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const KitStatusAlive = "alive"

type KitRecord struct {
	ID               string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	BreedingRecordID string         `gorm:"type:varchar(36);not null;index" json:"breeding_record_id" valid:"required~Breeding record ID is required"`
	KitNumber        int            `gorm:"not null" json:"kit_number"`
	BirthWeight      float64        `json:"birth_weight"`
	Gender           string         `gorm:"type:varchar(10);not null" json:"gender" valid:"required~Gender is required,in(male|female)~Invalid gender"`
	Color            string         `gorm:"type:varchar(30);not null" json:"color" valid:"required~Color is required"`
	Status           string         `gorm:"type:varchar(20);default:alive" json:"status"`
	WeaningDate      *time.Time     `json:"weaning_date"`
	WeaningWeight    float64        `json:"weaning_weight"`
	Notes            string         `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type KitUpdatePayload struct {
	WeaningWeight float64 `json:"weaning_weight"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

type KitRepo interface {
	CreateKitRecord(ctx context.Context, payload *KitRecord) (*KitRecord, error)
	UpdateKitRecord(ctx context.Context, kitID string, payload *KitUpdatePayload) (*KitRecord, error)
	GetKitRecordByID(ctx context.Context, kitID string) (*KitRecord, error)
}

type KitUseCase interface {
	CreateKitRecord(ctx context.Context, payload *KitRecord) (*KitRecord, error)
	UpdateKitRecord(ctx context.Context, kitID string, payload *KitUpdatePayload) (*KitRecord, error)
	GetKitRecordByID(ctx context.Context, kitID string) (*KitRecord, error)
}
