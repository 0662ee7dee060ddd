package mappers

import (
	"workbase/internal/domain/user"
	"workbase/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and
// persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		CreatedAt:    u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.Reconstruct(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		user.Role(model.Role),
		convertMillisToTime(model.CreatedAt),
	)
}
