package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rabbitry/config"
	"rabbitry/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type breedingRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewBreedingRepository(database *gorm.DB) domain.BreedingRepo {
	return &breedingRepository{
		db:  database,
		log: config.GetLogrusInstance(),
	}
}

func (br *breedingRepository) CreateBreedingRecord(ctx context.Context, payload *domain.BreedingRecord) (*domain.BreedingRecord, error) {
	tx := br.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		br.log.Errorf("could not begin transaction: %v", err)
		return nil, domain.ErrInternal
	}

	if payload.FarmID == "" || payload.DoeID == "" || payload.BuckID == "" ||
		payload.MatingDate == nil || payload.ExpectedBirthDate == nil {
		tx.Rollback()
		return nil, domain.NewValidationError("farm_id, doe_id, buck_id, mating_date and expected_birth_date are required")
	}

	var doe domain.Rabbit
	err := tx.Where("rabbit_id = ? AND farm_id = ? AND gender = ? AND deleted_at IS NULL",
		payload.DoeID, payload.FarmID, domain.GenderFemale).First(&doe).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("doe with id %s not found or invalid", payload.DoeID)
		}
		br.log.WithFields(logrus.Fields{"farm_id": payload.FarmID, "doe_id": payload.DoeID}).
			Errorf("error fetching doe: %v", err)
		return nil, domain.ErrInternal
	}

	var buck domain.Rabbit
	err = tx.Where("rabbit_id = ? AND farm_id = ? AND gender = ? AND deleted_at IS NULL",
		payload.BuckID, payload.FarmID, domain.GenderMale).First(&buck).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("buck with id %s not found or invalid", payload.BuckID)
		}
		br.log.WithFields(logrus.Fields{"farm_id": payload.FarmID, "buck_id": payload.BuckID}).
			Errorf("error fetching buck: %v", err)
		return nil, domain.ErrInternal
	}

	// Buck rest rule. Only the lower bound is checked, so an existing
	// record with a future mating date also blocks.
	restStart := payload.MatingDate.AddDate(0, 0, -domain.BuckRestDays)
	var recentMatings int64
	err = tx.Model(&domain.BreedingRecord{}).
		Where("buck_id = ? AND farm_id = ? AND mating_date >= ? AND deleted_at IS NULL",
			payload.BuckID, payload.FarmID, restStart).
		Count(&recentMatings).Error
	if err != nil {
		tx.Rollback()
		br.log.WithFields(logrus.Fields{"farm_id": payload.FarmID, "buck_id": payload.BuckID}).
			Errorf("error checking buck rest rule: %v", err)
		return nil, domain.ErrInternal
	}
	if recentMatings > 0 {
		tx.Rollback()
		return nil, domain.NewValidationError("buck %s was already used for mating within the last %d days", payload.BuckID, domain.BuckRestDays)
	}

	// Doe rest rule: one week after the last litter's weaning date. No
	// row lock is taken here, two concurrent matings can both pass the
	// check before either commits.
	var lastLitter domain.BreedingRecord
	err = tx.Where("doe_id = ? AND farm_id = ? AND actual_birth_date IS NOT NULL AND deleted_at IS NULL",
		payload.DoeID, payload.FarmID).
		Order("actual_birth_date DESC").First(&lastLitter).Error
	if err == nil {
		weaningDate := lastLitter.ActualBirthDate.AddDate(0, 0, domain.WeaningDays)
		if payload.MatingDate.Before(weaningDate.AddDate(0, 0, domain.DoeRestDays)) {
			tx.Rollback()
			return nil, domain.NewValidationError("doe %s cannot be served within 1 week of weaning", payload.DoeID)
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		br.log.WithFields(logrus.Fields{"farm_id": payload.FarmID, "doe_id": payload.DoeID}).
			Errorf("error checking doe rest rule: %v", err)
		return nil, domain.ErrInternal
	}

	alertDate := payload.MatingDate.AddDate(0, 0, domain.PregnancyAlertDays)
	now := time.Now()

	payload.ID = uuid.NewString()
	payload.AlertDate = &alertDate
	payload.CreatedAt = now
	payload.UpdatedAt = now

	if err := tx.Create(payload).Error; err != nil {
		tx.Rollback()
		br.log.WithFields(logrus.Fields{"farm_id": payload.FarmID, "doe_id": payload.DoeID}).
			Errorf("could not insert breeding record: %v", err)
		return nil, domain.ErrInternal
	}

	err = tx.Model(&domain.Rabbit{}).
		Where("rabbit_id = ? AND farm_id = ?", payload.DoeID, payload.FarmID).
		Updates(map[string]interface{}{
			"is_pregnant":          true,
			"pregnancy_start_date": payload.MatingDate,
			"expected_birth_date":  payload.ExpectedBirthDate,
		}).Error
	if err != nil {
		tx.Rollback()
		br.log.WithFields(logrus.Fields{"farm_id": payload.FarmID, "doe_id": payload.DoeID}).
			Errorf("could not mark doe pregnant: %v", err)
		return nil, domain.ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		br.log.Errorf("could not commit transaction: %v", err)
		return nil, domain.ErrInternal
	}

	return payload, nil
}

func (br *breedingRepository) UpdateBreedingRecord(ctx context.Context, id, farmID string, payload *domain.BreedingUpdatePayload) (*domain.BreedingRecord, error) {
	tx := br.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		br.log.Errorf("could not begin transaction: %v", err)
		return nil, domain.ErrInternal
	}

	var record domain.BreedingRecord
	err := tx.Where("id = ? AND farm_id = ? AND deleted_at IS NULL", id, farmID).First(&record).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("breeding record with id %s not found", id)
		}
		br.log.WithFields(logrus.Fields{"farm_id": farmID, "breeding_record_id": id}).
			Errorf("error fetching breeding record: %v", err)
		return nil, domain.ErrInternal
	}

	// Birth outcome supplied: run the culling heuristics over the doe's
	// stored history (not including this update) and resolve pregnancy.
	if payload.ActualBirthDate != nil && payload.NumberOfKits != 0 {
		var history []domain.BreedingRecord
		err = tx.Where("doe_id = ? AND farm_id = ? AND actual_birth_date IS NOT NULL AND deleted_at IS NULL",
			record.DoeID, farmID).
			Order("actual_birth_date DESC").
			Limit(domain.CullingHistorySize).
			Find(&history).Error
		if err != nil {
			tx.Rollback()
			br.log.WithFields(logrus.Fields{"farm_id": farmID, "doe_id": record.DoeID}).
				Errorf("error fetching litter history: %v", err)
			return nil, domain.ErrInternal
		}

		var priorLitters []domain.BreedingRecord
		for _, h := range history {
			if h.NumberOfKits > 0 {
				priorLitters = append(priorLitters, h)
			}
		}

		allSmall := len(priorLitters) >= domain.CullingHistorySize
		for _, h := range priorLitters {
			if h.NumberOfKits >= domain.MinLitterSize {
				allSmall = false
			}
		}

		if allSmall {
			record.CullingAdvice = fmt.Sprintf("doe %s produced %d consecutive litters under %d kits, consider culling",
				record.DoeID, domain.CullingHistorySize, domain.MinLitterSize)
		} else if payload.NumberOfKits < domain.MinLitterSize || payload.NumberOfKits > domain.MaxLitterSize {
			record.CullingAdvice = fmt.Sprintf("litter of %d kits is outside the expected %d-%d range, consider culling doe %s",
				payload.NumberOfKits, domain.MinLitterSize, domain.MaxLitterSize, record.DoeID)
		}

		if record.CullingAdvice != "" {
			alert := domain.CullingAlert{
				ID:               uuid.NewString(),
				FarmID:           farmID,
				DoeID:            record.DoeID,
				BreedingRecordID: record.ID,
				Reason:           record.CullingAdvice,
				CreatedAt:        time.Now(),
			}
			if err := tx.Create(&alert).Error; err != nil {
				tx.Rollback()
				br.log.WithFields(logrus.Fields{"farm_id": farmID, "doe_id": record.DoeID}).
					Errorf("could not insert culling alert: %v", err)
				return nil, domain.ErrInternal
			}
			br.log.WithFields(logrus.Fields{
				"farm_id":            farmID,
				"doe_id":             record.DoeID,
				"breeding_record_id": record.ID,
			}).Warn(record.CullingAdvice)
		}

		err = tx.Model(&domain.Rabbit{}).
			Where("rabbit_id = ? AND farm_id = ?", record.DoeID, farmID).
			Updates(map[string]interface{}{
				"is_pregnant":          false,
				"pregnancy_start_date": nil,
				"expected_birth_date":  nil,
			}).Error
		if err != nil {
			tx.Rollback()
			br.log.WithFields(logrus.Fields{"farm_id": farmID, "doe_id": record.DoeID}).
				Errorf("could not clear doe pregnancy: %v", err)
			return nil, domain.ErrInternal
		}
	}

	record.ActualBirthDate = domain.MergeTime(record.ActualBirthDate, payload.ActualBirthDate)
	record.NumberOfKits = domain.MergeInt(record.NumberOfKits, payload.NumberOfKits)
	record.Notes = domain.MergeString(record.Notes, payload.Notes)

	err = tx.Model(&record).Updates(map[string]interface{}{
		"actual_birth_date": record.ActualBirthDate,
		"number_of_kits":    record.NumberOfKits,
		"notes":             record.Notes,
		"updated_at":        time.Now(),
	}).Error
	if err != nil {
		tx.Rollback()
		br.log.WithFields(logrus.Fields{"farm_id": farmID, "breeding_record_id": id}).
			Errorf("could not update breeding record: %v", err)
		return nil, domain.ErrInternal
	}

	if err := tx.Commit().Error; err != nil {
		br.log.Errorf("could not commit transaction: %v", err)
		return nil, domain.ErrInternal
	}

	return &record, nil
}

func (br *breedingRepository) DeleteBreedingRecord(ctx context.Context, id, farmID string) error {
	tx := br.db.WithContext(ctx).Begin()
	if err := tx.Error; err != nil {
		br.log.Errorf("could not begin transaction: %v", err)
		return domain.ErrInternal
	}

	var record domain.BreedingRecord
	err := tx.Where("id = ? AND farm_id = ? AND deleted_at IS NULL", id, farmID).First(&record).Error
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewValidationError("breeding record with id %s not found", id)
		}
		br.log.WithFields(logrus.Fields{"farm_id": farmID, "breeding_record_id": id}).
			Errorf("error fetching breeding record: %v", err)
		return domain.ErrInternal
	}

	if err := tx.Where("breeding_record_id = ?", record.ID).Delete(&domain.KitRecord{}).Error; err != nil {
		tx.Rollback()
		br.log.WithFields(logrus.Fields{"farm_id": farmID, "breeding_record_id": id}).
			Errorf("could not delete kit records: %v", err)
		return domain.ErrInternal
	}

	if err := tx.Where("id = ?", record.ID).Delete(&domain.BreedingRecord{}).Error; err != nil {
		tx.Rollback()
		br.log.WithFields(logrus.Fields{"farm_id": farmID, "breeding_record_id": id}).
			Errorf("could not delete breeding record: %v", err)
		return domain.ErrInternal
	}

	// Pregnancy never resolved: the doe is no longer considered pregnant.
	if record.ActualBirthDate == nil {
		err = tx.Model(&domain.Rabbit{}).
			Where("rabbit_id = ? AND farm_id = ?", record.DoeID, farmID).
			Updates(map[string]interface{}{
				"is_pregnant":          false,
				"pregnancy_start_date": nil,
				"expected_birth_date":  nil,
			}).Error
		if err != nil {
			tx.Rollback()
			br.log.WithFields(logrus.Fields{"farm_id": farmID, "doe_id": record.DoeID}).
				Errorf("could not clear doe pregnancy: %v", err)
			return domain.ErrInternal
		}
	}

	if err := tx.Commit().Error; err != nil {
		br.log.Errorf("could not commit transaction: %v", err)
		return domain.ErrInternal
	}

	return nil
}

func (br *breedingRepository) GetBreedingRecordByID(ctx context.Context, id, farmID string) (*domain.BreedingRecord, error) {
	var record domain.BreedingRecord

	err := br.db.WithContext(ctx).
		Preload("Kits").
		Where("id = ? AND farm_id = ? AND deleted_at IS NULL", id, farmID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("breeding record with id %s not found", id)
		}
		br.log.WithFields(logrus.Fields{"farm_id": farmID, "breeding_record_id": id}).
			Errorf("error fetching breeding record: %v", err)
		return nil, domain.ErrInternal
	}

	return &record, nil
}

func (br *breedingRepository) GetAllBreedingRecords(ctx context.Context, farmID string) (*[]domain.BreedingRecord, error) {
	var records []domain.BreedingRecord

	err := br.db.WithContext(ctx).
		Preload("Kits").
		Where("farm_id = ? AND deleted_at IS NULL", farmID).
		Find(&records).Error
	if err != nil {
		br.log.WithField("farm_id", farmID).Errorf("error fetching breeding records: %v", err)
		return nil, domain.ErrInternal
	}

	return &records, nil
}

func (br *breedingRepository) GetCullingAlerts(ctx context.Context, farmID string) (*[]domain.CullingAlert, error) {
	var alerts []domain.CullingAlert

	err := br.db.WithContext(ctx).
		Where("farm_id = ?", farmID).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		br.log.WithField("farm_id", farmID).Errorf("error fetching culling alerts: %v", err)
		return nil, domain.ErrInternal
	}

	return &alerts, nil
}
