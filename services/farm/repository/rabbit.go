package repository

import (
	"context"
	"errors"
	"time"

	"rabbitry/config"
	"rabbitry/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type rabbitRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewRabbitRepository(database *gorm.DB) domain.RabbitRepo {
	return &rabbitRepository{
		db:  database,
		log: config.GetLogrusInstance(),
	}
}

func (rr *rabbitRepository) CreateRabbit(ctx context.Context, payload *domain.Rabbit) (*domain.Rabbit, error) {
	now := time.Now()
	payload.RabbitID = uuid.NewString()
	payload.CreatedAt = now
	payload.UpdatedAt = now

	// Pregnancy state is owned by the breeding lifecycle, never set on
	// intake.
	payload.IsPregnant = false
	payload.PregnancyStartDate = nil
	payload.ExpectedBirthDate = nil

	if err := rr.db.WithContext(ctx).Create(payload).Error; err != nil {
		rr.log.WithField("farm_id", payload.FarmID).Errorf("could not insert rabbit: %v", err)
		return nil, domain.ErrInternal
	}

	return payload, nil
}

func (rr *rabbitRepository) GetRabbitByID(ctx context.Context, rabbitID, farmID string) (*domain.Rabbit, error) {
	var rabbit domain.Rabbit

	err := rr.db.WithContext(ctx).
		Where("rabbit_id = ? AND farm_id = ? AND deleted_at IS NULL", rabbitID, farmID).
		First(&rabbit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("rabbit with id %s not found", rabbitID)
		}
		rr.log.WithFields(logrus.Fields{"farm_id": farmID, "rabbit_id": rabbitID}).
			Errorf("error fetching rabbit: %v", err)
		return nil, domain.ErrInternal
	}

	return &rabbit, nil
}

func (rr *rabbitRepository) GetAllRabbits(ctx context.Context, farmID string) (*[]domain.Rabbit, error) {
	var rabbits []domain.Rabbit

	err := rr.db.WithContext(ctx).
		Where("farm_id = ? AND deleted_at IS NULL", farmID).
		Find(&rabbits).Error
	if err != nil {
		rr.log.WithField("farm_id", farmID).Errorf("error fetching rabbits: %v", err)
		return nil, domain.ErrInternal
	}

	return &rabbits, nil
}

func (rr *rabbitRepository) UpdateRabbit(ctx context.Context, rabbitID, farmID string, payload *domain.Rabbit) (*domain.Rabbit, error) {
	tx := rr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		rr.log.Errorf("could not begin transaction: %v", err)
		return nil, domain.ErrInternal
	}

	var rabbit domain.Rabbit
	err := tx.Where("rabbit_id = ? AND farm_id = ? AND deleted_at IS NULL", rabbitID, farmID).First(&rabbit).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("rabbit with id %s not found", rabbitID)
		}
		rr.log.WithFields(logrus.Fields{"farm_id": farmID, "rabbit_id": rabbitID}).
			Errorf("error fetching rabbit: %v", err)
		return nil, domain.ErrInternal
	}

	rabbit.TagNumber = domain.MergeString(rabbit.TagNumber, payload.TagNumber)
	rabbit.Breed = domain.MergeString(rabbit.Breed, payload.Breed)
	rabbit.DateOfBirth = domain.MergeTime(rabbit.DateOfBirth, payload.DateOfBirth)
	rabbit.Notes = domain.MergeString(rabbit.Notes, payload.Notes)

	err = tx.Model(&rabbit).Updates(map[string]interface{}{
		"tag_number":    rabbit.TagNumber,
		"breed":         rabbit.Breed,
		"date_of_birth": rabbit.DateOfBirth,
		"notes":         rabbit.Notes,
		"updated_at":    time.Now(),
	}).Error
	if err != nil {
		tx.Rollback()
		rr.log.WithFields(logrus.Fields{"farm_id": farmID, "rabbit_id": rabbitID}).
			Errorf("could not update rabbit: %v", err)
		return nil, domain.ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		rr.log.Errorf("could not commit transaction: %v", err)
		return nil, domain.ErrInternal
	}

	return &rabbit, nil
}

func (rr *rabbitRepository) DeleteRabbit(ctx context.Context, rabbitID, farmID string) error {
	var rabbit domain.Rabbit

	err := rr.db.WithContext(ctx).
		Where("rabbit_id = ? AND farm_id = ? AND deleted_at IS NULL", rabbitID, farmID).
		First(&rabbit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewValidationError("rabbit with id %s not found", rabbitID)
		}
		rr.log.WithFields(logrus.Fields{"farm_id": farmID, "rabbit_id": rabbitID}).
			Errorf("error fetching rabbit: %v", err)
		return domain.ErrInternal
	}

	if rabbit.IsPregnant {
		return domain.NewValidationError("rabbit %s is pregnant and cannot be removed", rabbitID)
	}

	err = rr.db.WithContext(ctx).
		Where("rabbit_id = ? AND farm_id = ?", rabbitID, farmID).
		Delete(&domain.Rabbit{}).Error
	if err != nil {
		rr.log.WithFields(logrus.Fields{"farm_id": farmID, "rabbit_id": rabbitID}).
			Errorf("could not delete rabbit: %v", err)
		return domain.ErrInternal
	}

	return nil
}
