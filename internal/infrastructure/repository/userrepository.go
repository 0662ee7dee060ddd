package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"workbase/internal/domain/user"
	"workbase/internal/infrastructure/persistence/mappers"
	"workbase/internal/infrastructure/persistence/models"
	"workbase/internal/shared/db"
	"workbase/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if u.ID() == 0 {
		if err := u.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", strings.ToLower(email)).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByNamesOrEmails resolves every given value against display names and
// email addresses in one query.
func (r *UserRepository) FindByNamesOrEmails(ctx context.Context, values []string) ([]*user.User, error) {
	if len(values) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}

	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("LOWER(name) IN ? OR LOWER(email) IN ?", lowered, lowered).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by name or email: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
