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

type kitRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewKitRepository(database *gorm.DB) domain.KitRepo {
	return &kitRepository{
		db:  database,
		log: config.GetLogrusInstance(),
	}
}

func (kr *kitRepository) CreateKitRecord(ctx context.Context, payload *domain.KitRecord) (*domain.KitRecord, error) {
	tx := kr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		kr.log.Errorf("could not begin transaction: %v", err)
		return nil, domain.ErrInternal
	}

	if payload.BreedingRecordID == "" || payload.KitNumber == 0 || payload.BirthWeight == 0 ||
		payload.Gender == "" || payload.Color == "" {
		tx.Rollback()
		return nil, domain.NewValidationError("breeding_record_id, kit_number, birth_weight, gender and color are required")
	}

	var parent domain.BreedingRecord
	err := tx.Where("id = ? AND deleted_at IS NULL", payload.BreedingRecordID).First(&parent).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("breeding record with id %s not found", payload.BreedingRecordID)
		}
		kr.log.WithField("breeding_record_id", payload.BreedingRecordID).
			Errorf("error fetching breeding record: %v", err)
		return nil, domain.ErrInternal
	}

	if parent.ActualBirthDate == nil {
		tx.Rollback()
		return nil, domain.NewValidationError("birth must be recorded on breeding record %s before kits can be added", parent.ID)
	}

	// Weaning date is derived from the litter's birth, never supplied.
	weaningDate := parent.ActualBirthDate.AddDate(0, 0, domain.WeaningDays)
	now := time.Now()

	payload.ID = uuid.NewString()
	payload.WeaningDate = &weaningDate
	if payload.Status == "" {
		payload.Status = domain.KitStatusAlive
	}
	payload.CreatedAt = now
	payload.UpdatedAt = now

	if err := tx.Create(payload).Error; err != nil {
		tx.Rollback()
		kr.log.WithField("breeding_record_id", payload.BreedingRecordID).
			Errorf("could not insert kit record: %v", err)
		return nil, domain.ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		kr.log.Errorf("could not commit transaction: %v", err)
		return nil, domain.ErrInternal
	}

	return payload, nil
}

func (kr *kitRepository) UpdateKitRecord(ctx context.Context, kitID string, payload *domain.KitUpdatePayload) (*domain.KitRecord, error) {
	tx := kr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		kr.log.Errorf("could not begin transaction: %v", err)
		return nil, domain.ErrInternal
	}

	var kit domain.KitRecord
	err := tx.Where("id = ? AND deleted_at IS NULL", kitID).First(&kit).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("kit record with id %s not found", kitID)
		}
		kr.log.WithField("kit_id", kitID).Errorf("error fetching kit record: %v", err)
		return nil, domain.ErrInternal
	}

	kit.WeaningWeight = domain.MergeFloat(kit.WeaningWeight, payload.WeaningWeight)
	kit.Status = domain.MergeString(kit.Status, payload.Status)
	kit.Notes = domain.MergeString(kit.Notes, payload.Notes)

	err = tx.Model(&kit).Updates(map[string]interface{}{
		"weaning_weight": kit.WeaningWeight,
		"status":         kit.Status,
		"notes":          kit.Notes,
		"updated_at":     time.Now(),
	}).Error
	if err != nil {
		tx.Rollback()
		kr.log.WithField("kit_id", kitID).Errorf("could not update kit record: %v", err)
		return nil, domain.ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		kr.log.Errorf("could not commit transaction: %v", err)
		return nil, domain.ErrInternal
	}

	return &kit, nil
}

func (kr *kitRepository) GetKitRecordByID(ctx context.Context, kitID string) (*domain.KitRecord, error) {
	var kit domain.KitRecord

	err := kr.db.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", kitID).First(&kit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("kit record with id %s not found", kitID)
		}
		kr.log.WithField("kit_id", kitID).Errorf("error fetching kit record: %v", err)
		return nil, domain.ErrInternal
	}

	return &kit, nil
}
