package repository

import (
	"testing"
	"time"

	"rabbitry/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a uniquely named in-memory database so tests cannot
// see each other's rows.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.Farm{},
		&domain.Rabbit{},
		&domain.BreedingRecord{},
		&domain.KitRecord{},
		&domain.CullingAlert{},
	)
	require.NoError(t, err)

	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func seedRabbit(t *testing.T, db *gorm.DB, farmID, gender string) *domain.Rabbit {
	t.Helper()

	rabbit := &domain.Rabbit{
		RabbitID: uuid.NewString(),
		FarmID:   farmID,
		Gender:   gender,
	}
	require.NoError(t, db.Create(rabbit).Error)
	return rabbit
}

// seedLitter inserts a historical birth-recorded breeding record
// directly, bypassing the spacing rules.
func seedLitter(t *testing.T, db *gorm.DB, farmID, doeID, buckID string, birth time.Time, kits int) *domain.BreedingRecord {
	t.Helper()

	mating := birth.AddDate(0, 0, -31)
	expected := birth
	record := &domain.BreedingRecord{
		ID:                uuid.NewString(),
		FarmID:            farmID,
		DoeID:             doeID,
		BuckID:            buckID,
		MatingDate:        &mating,
		ExpectedBirthDate: &expected,
		ActualBirthDate:   &birth,
		NumberOfKits:      kits,
	}
	require.NoError(t, db.Create(record).Error)
	return record
}
