package config

import (
	"context"
	"fmt"
	"os"

	"rabbitry/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB
var pgxPool *pgxpool.Pool

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

func BootDB() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	db, err := gorm.Open(postgres.Open(GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := autoMigrate(db); err != nil {
		return nil, err
	}

	if err := seedRoles(db); err != nil {
		return nil, err
	}

	gormDB = db
	return gormDB, nil
}

func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.Farm{},
		&domain.Rabbit{},
		&domain.BreedingRecord{},
		&domain.KitRecord{},
		&domain.CullingAlert{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// seedRoles inserts the built-in roles once; existing rows win so a farm
// can tune permission sets without them being reset on boot.
func seedRoles(db *gorm.DB) error {
	for _, role := range domain.DefaultRoles() {
		r := role
		err := db.Where("name = ?", r.Name).FirstOrCreate(&r).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %w", r.Name, err)
		}
	}
	return nil
}

// BootPgxPool opens the raw pool used by the user repository.
func BootPgxPool() (*pgxpool.Pool, error) {
	if pgxPool != nil {
		return pgxPool, nil
	}

	pool, err := pgxpool.New(context.Background(), GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pgxPool = pool
	return pgxPool, nil
}
