package repository

import (
	"context"
	"errors"

	"rabbitry/config"
	"rabbitry/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type roleRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewRoleRepository(database *gorm.DB) domain.RoleRepo {
	return &roleRepository{
		db:  database,
		log: config.GetLogrusInstance(),
	}
}

func (rr *roleRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	var role domain.Role

	err := rr.db.WithContext(ctx).
		Where("name = ? AND deleted_at IS NULL", name).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("role %s not found", name)
		}
		// Covers corrupted permission payloads too: the JSON serializer
		// fails on scan and the caller only sees the generic error.
		rr.log.WithField("role", name).Errorf("error fetching role: %v", err)
		return nil, domain.ErrInternal
	}

	return &role, nil
}

func (rr *roleRepository) GetAllRoles(ctx context.Context) (*[]domain.Role, error) {
	var roles []domain.Role

	err := rr.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Find(&roles).Error
	if err != nil {
		rr.log.Errorf("error fetching roles: %v", err)
		return nil, domain.ErrInternal
	}

	return &roles, nil
}
