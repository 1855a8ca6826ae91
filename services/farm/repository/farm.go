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

type farmRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewFarmRepository(database *gorm.DB) domain.FarmRepo {
	return &farmRepository{
		db:  database,
		log: config.GetLogrusInstance(),
	}
}

func (fr *farmRepository) CreateFarm(ctx context.Context, payload *domain.Farm) (*domain.Farm, error) {
	now := time.Now()
	payload.FarmID = uuid.NewString()
	payload.CreatedAt = now
	payload.UpdatedAt = now

	if err := fr.db.WithContext(ctx).Create(payload).Error; err != nil {
		fr.log.WithField("owner_id", payload.OwnerID).Errorf("could not insert farm: %v", err)
		return nil, domain.ErrInternal
	}

	return payload, nil
}

func (fr *farmRepository) GetFarmByID(ctx context.Context, farmID string) (*domain.Farm, error) {
	var farm domain.Farm

	err := fr.db.WithContext(ctx).
		Where("farm_id = ? AND deleted_at IS NULL", farmID).
		First(&farm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("farm with id %s not found", farmID)
		}
		fr.log.WithField("farm_id", farmID).Errorf("error fetching farm: %v", err)
		return nil, domain.ErrInternal
	}

	return &farm, nil
}

func (fr *farmRepository) GetAllFarms(ctx context.Context, ownerID int) (*[]domain.Farm, error) {
	var farms []domain.Farm

	err := fr.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Find(&farms).Error
	if err != nil {
		fr.log.WithField("owner_id", ownerID).Errorf("error fetching farms: %v", err)
		return nil, domain.ErrInternal
	}

	return &farms, nil
}

func (fr *farmRepository) UpdateFarm(ctx context.Context, farmID string, payload *domain.Farm) (*domain.Farm, error) {
	tx := fr.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		fr.log.Errorf("could not begin transaction: %v", err)
		return nil, domain.ErrInternal
	}

	var farm domain.Farm
	err := tx.Where("farm_id = ? AND deleted_at IS NULL", farmID).First(&farm).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("farm with id %s not found", farmID)
		}
		fr.log.WithField("farm_id", farmID).Errorf("error fetching farm: %v", err)
		return nil, domain.ErrInternal
	}

	farm.Name = domain.MergeString(farm.Name, payload.Name)
	farm.Location = domain.MergeString(farm.Location, payload.Location)

	err = tx.Model(&farm).Updates(map[string]interface{}{
		"name":       farm.Name,
		"location":   farm.Location,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		tx.Rollback()
		fr.log.WithField("farm_id", farmID).Errorf("could not update farm: %v", err)
		return nil, domain.ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		fr.log.Errorf("could not commit transaction: %v", err)
		return nil, domain.ErrInternal
	}

	return &farm, nil
}

func (fr *farmRepository) DeleteFarm(ctx context.Context, farmID string, ownerID int) error {
	result := fr.db.WithContext(ctx).
		Where("farm_id = ? AND owner_id = ? AND deleted_at IS NULL", farmID, ownerID).
		Delete(&domain.Farm{})
	if result.Error != nil {
		fr.log.WithField("farm_id", farmID).Errorf("could not delete farm: %v", result.Error)
		return domain.ErrInternal
	}
	if result.RowsAffected == 0 {
		return domain.NewValidationError("farm with id %s not found", farmID)
	}

	return nil
}
