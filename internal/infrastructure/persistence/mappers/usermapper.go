package mappers

import (
	"time"

	"escala/internal/domain/user"
	uservo "escala/internal/domain/user/valueobjects"
	"escala/internal/infrastructure/persistence/models"
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
		ID:                u.ID(),
		Name:              u.Name(),
		Cohort:            u.Cohort(),
		Year:              u.Year(),
		Course:            u.Course(),
		Gender:            u.Gender().String(),
		NormalCount:       u.NormalCount(),
		HeightenedCount:   u.HeightenedCount(),
		PunishmentBalance: u.PunishmentBalance(),
		Version:           u.Version(),
		CreatedAt:         u.CreatedAt().UnixMilli(),
		UpdatedAt:         u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	gender, err := uservo.NewGender(model.Gender)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Cohort,
		model.Year,
		model.Course,
		gender,
		model.NormalCount,
		model.HeightenedCount,
		model.PunishmentBalance,
		model.Version,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
