package repository

import (
	"context"
	"errors"

	"rabbitry/config"
	"rabbitry/domain"
	"rabbitry/middleware"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewAuthRepository(database *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db:  database,
		log: config.GetLogrusInstance(),
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	var user domain.User

	err := ar.db.WithContext(ctx).
		Where("username = ? AND deleted_at IS NULL", data.Username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a bad password, unknown usernames are not
			// disclosed.
			return nil, domain.NewUnauthorizedError("invalid username or password")
		}
		ar.log.WithField("username", data.Username).Errorf("error fetching user: %v", err)
		return nil, domain.ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return nil, domain.NewUnauthorizedError("invalid username or password")
	}

	token, err := middleware.GenerateJWT(user.UserID, user.Username, user.Role, user.FarmID)
	if err != nil {
		ar.log.WithField("username", data.Username).Errorf("failed to generate token: %v", err)
		return nil, domain.ErrInternal
	}

	return &domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (ar *authRepository) Register(ctx context.Context, data *domain.RegisterRequest, actorRole string) (*domain.SafeUserData, error) {
	var actor domain.Role
	err := ar.db.WithContext(ctx).
		Where("name = ? AND deleted_at IS NULL", actorRole).
		First(&actor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewUnauthorizedError("role %s is not valid", actorRole)
		}
		ar.log.WithField("role", actorRole).Errorf("error fetching actor role: %v", err)
		return nil, domain.ErrInternal
	}

	var target domain.Role
	err = ar.db.WithContext(ctx).
		Where("name = ? AND deleted_at IS NULL", data.Role).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewValidationError("role %s does not exist", data.Role)
		}
		ar.log.WithField("role", data.Role).Errorf("error fetching target role: %v", err)
		return nil, domain.ErrInternal
	}

	if !actor.Permissions.Can(domain.PermissionManageUsers) {
		return nil, domain.NewUnauthorizedError("role %s cannot register users", actorRole)
	}
	// A role can only hand out roles at or below its own rank.
	if actor.Rank() < target.Rank() {
		return nil, domain.NewUnauthorizedError("role %s cannot assign role %s", actorRole, data.Role)
	}

	var existing domain.User
	err = ar.db.WithContext(ctx).
		Where("username = ? AND deleted_at IS NULL", data.Username).
		First(&existing).Error
	if err == nil {
		return nil, domain.NewValidationError("username %s already exists", data.Username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		ar.log.WithField("username", data.Username).Errorf("error checking username: %v", err)
		return nil, domain.ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		ar.log.WithField("username", data.Username).Errorf("could not hash password: %v", err)
		return nil, domain.ErrInternal
	}

	user := domain.User{
		Username: data.Username,
		Password: string(hash),
		Role:     data.Role,
		FarmID:   data.FarmID,
	}
	if err := ar.db.WithContext(ctx).Create(&user).Error; err != nil {
		ar.log.WithField("username", data.Username).Errorf("could not insert user: %v", err)
		return nil, domain.ErrInternal
	}

	return &domain.SafeUserData{
		UserID:    user.UserID,
		Username:  user.Username,
		Role:      user.Role,
		FarmID:    user.FarmID,
		CreatedAt: user.CreatedAt,
	}, nil
}
