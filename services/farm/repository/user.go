package repository

import (
	"context"
	"errors"
	"fmt"

	"rabbitry/config"
	"rabbitry/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// User lookups stay on the raw pool with parameterized SQL.
type userRepository struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

func NewUserRepository(database *pgxpool.Pool) domain.UserRepo {
	return &userRepository{
		db:  database,
		log: config.GetLogrusInstance(),
	}
}

func (ur *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password, role, farm_id, created_at
		FROM users
		WHERE username = $1 AND deleted_at IS NULL;
	`

	var user domain.User
	err := ur.db.QueryRow(ctx, query, username).
		Scan(&user.UserID, &user.Username, &user.Password, &user.Role, &user.FarmID, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user %s not found", username)
		}
		ur.log.WithField("username", username).Errorf("could not find user: %v", err)
		return nil, domain.ErrInternal
	}

	return &user, nil
}

func (ur *userRepository) GetAllStaff(ctx context.Context, farmID string) (*[]domain.SafeUserData, error) {
	query := `
		SELECT user_id, username, role, farm_id, created_at
		FROM users
		WHERE farm_id = $1 AND deleted_at IS NULL
		ORDER BY user_id;
	`

	rows, err := ur.db.Query(ctx, query, farmID)
	if err != nil {
		ur.log.WithField("farm_id", farmID).Errorf("could not list staff: %v", err)
		return nil, domain.ErrInternal
	}
	defer rows.Close()

	var staff []domain.SafeUserData
	for rows.Next() {
		var s domain.SafeUserData
		if err := rows.Scan(&s.UserID, &s.Username, &s.Role, &s.FarmID, &s.CreatedAt); err != nil {
			ur.log.WithField("farm_id", farmID).Errorf("could not scan staff row: %v", err)
			return nil, domain.ErrInternal
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		ur.log.WithField("farm_id", farmID).Errorf("could not read staff rows: %v", err)
		return nil, domain.ErrInternal
	}

	return &staff, nil
}

func (ur *userRepository) DeleteStaff(ctx context.Context, userID int, farmID string) error {
	query := `
		UPDATE users
		SET deleted_at = now()
		WHERE user_id = $1 AND farm_id = $2 AND deleted_at IS NULL;
	`

	tag, err := ur.db.Exec(ctx, query, userID, farmID)
	if err != nil {
		ur.log.WithField("user_id", fmt.Sprintf("%d", userID)).Errorf("could not delete staff: %v", err)
		return domain.ErrInternal
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("user with id %d not found", userID)
	}

	return nil
}
