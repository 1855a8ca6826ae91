package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

const (
	GenderFemale = "female"
	GenderMale   = "male"
)

// A rabbit marked pregnant always carries both pregnancy dates; clearing
// the flag nulls them together.
type Rabbit struct {
	RabbitID           string         `gorm:"type:varchar(36);primaryKey" json:"rabbit_id"`
	FarmID             string         `gorm:"type:varchar(36);not null;index" json:"farm_id" valid:"required~Farm ID is required"`
	TagNumber          string         `gorm:"type:varchar(30)" json:"tag_number"`
	Gender             string         `gorm:"type:varchar(10);not null" json:"gender" valid:"required~Gender is required,in(male|female)~Invalid gender"`
	Breed              string         `gorm:"type:varchar(50)" json:"breed"`
	DateOfBirth        *time.Time     `json:"date_of_birth"`
	IsPregnant         bool           `gorm:"default:false" json:"is_pregnant"`
	PregnancyStartDate *time.Time     `json:"pregnancy_start_date"`
	ExpectedBirthDate  *time.Time     `json:"expected_birth_date"`
	Notes              string         `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type RabbitRepo interface {
	CreateRabbit(ctx context.Context, payload *Rabbit) (*Rabbit, error)
	GetRabbitByID(ctx context.Context, rabbitID, farmID string) (*Rabbit, error)
	GetAllRabbits(ctx context.Context, farmID string) (*[]Rabbit, error)
	UpdateRabbit(ctx context.Context, rabbitID, farmID string, payload *Rabbit) (*Rabbit, error)
	DeleteRabbit(ctx context.Context, rabbitID, farmID string) error
}

type RabbitUseCase interface {
	CreateRabbit(ctx context.Context, payload *Rabbit) (*Rabbit, error)
	GetRabbitByID(ctx context.Context, rabbitID, farmID string) (*Rabbit, error)
	GetAllRabbits(ctx context.Context, farmID string) (*[]Rabbit, error)
	UpdateRabbit(ctx context.Context, rabbitID, farmID string, payload *Rabbit) (*Rabbit, error)
	DeleteRabbit(ctx context.Context, rabbitID, farmID string) error
}
