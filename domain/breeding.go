package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Biological timing rules, in days.
const (
	PregnancyAlertDays = 21 // mating -> pregnancy confirmation reminder
	WeaningDays        = 42 // birth -> kits separated from the doe
	DoeRestDays        = 7  // weaning -> doe can be served again
	BuckRestDays       = 3  // rest between matings for a buck
)

// Litter-size culling heuristics.
const (
	MinLitterSize      = 5
	MaxLitterSize      = 10
	CullingHistorySize = 3
)

type BreedingRecord struct {
	ID                string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	FarmID            string         `gorm:"type:varchar(36);not null;index" json:"farm_id" valid:"required~Farm ID is required"`
	DoeID             string         `gorm:"type:varchar(36);not null;index" json:"doe_id" valid:"required~Doe ID is required"`
	BuckID            string         `gorm:"type:varchar(36);not null;index" json:"buck_id" valid:"required~Buck ID is required"`
	MatingDate        *time.Time     `json:"mating_date"`
	ExpectedBirthDate *time.Time     `json:"expected_birth_date"`
	AlertDate         *time.Time     `json:"alert_date"`
	ActualBirthDate   *time.Time     `json:"actual_birth_date"`
	NumberOfKits      int            `json:"number_of_kits"`
	Notes             string         `gorm:"type:text" json:"notes"`
	Kits              []KitRecord    `gorm:"foreignKey:BreedingRecordID" json:"kits"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Set on the returned record when a birth update tripped a culling
	// heuristic; never persisted on the record itself.
	CullingAdvice string `gorm:"-" json:"culling_advice,omitempty"`
}

// BreedingUpdatePayload carries the optional birth outcome. Zero values
// mean "not supplied" (see the merge helpers).
type BreedingUpdatePayload struct {
	ActualBirthDate *time.Time `json:"actual_birth_date"`
	NumberOfKits    int        `json:"number_of_kits"`
	Notes           string     `json:"notes"`
}

type BreedingRepo interface {
	CreateBreedingRecord(ctx context.Context, payload *BreedingRecord) (*BreedingRecord, error)
	UpdateBreedingRecord(ctx context.Context, id, farmID string, payload *BreedingUpdatePayload) (*BreedingRecord, error)
	DeleteBreedingRecord(ctx context.Context, id, farmID string) error
	GetBreedingRecordByID(ctx context.Context, id, farmID string) (*BreedingRecord, error)
	GetAllBreedingRecords(ctx context.Context, farmID string) (*[]BreedingRecord, error)
	GetCullingAlerts(ctx context.Context, farmID string) (*[]CullingAlert, error)
}

type BreedingUseCase interface {
	CreateBreedingRecord(ctx context.Context, payload *BreedingRecord) (*BreedingRecord, error)
	UpdateBreedingRecord(ctx context.Context, id, farmID string, payload *BreedingUpdatePayload) (*BreedingRecord, error)
	DeleteBreedingRecord(ctx context.Context, id, farmID string) error
	GetBreedingRecordByID(ctx context.Context, id, farmID string) (*BreedingRecord, error)
	GetAllBreedingRecords(ctx context.Context, farmID string) (*[]BreedingRecord, error)
	GetCullingAlerts(ctx context.Context, farmID string) (*[]CullingAlert, error)
}
