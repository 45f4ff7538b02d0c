package mappers

import (
	"fmt"
	"time"

	"escala/internal/domain/user"
	"escala/internal/infrastructure/persistence/models"
)

// RoleGrantMapper handles the conversion between RoleGrant value objects and
// persistence models.
type RoleGrantMapper interface {
	ToModel(grant user.RoleGrant) *models.RoleGrantModel
	ToDomain(model *models.RoleGrantModel) (user.RoleGrant, error)
}

type RoleGrantMapperImpl struct{}

func NewRoleGrantMapper() RoleGrantMapper {
	return &RoleGrantMapperImpl{}
}

func (m *RoleGrantMapperImpl) ToModel(grant user.RoleGrant) *models.RoleGrantModel {
	model := &models.RoleGrantModel{
		UserID:    grant.UserID(),
		Role:      grant.Role(),
		Permanent: grant.IsPermanent(),
	}
	if !grant.IsPermanent() {
		from := grant.ValidFrom().UnixMilli()
		to := grant.ValidTo().UnixMilli()
		model.ValidFrom = &from
		model.ValidTo = &to
	}
	return model
}

func (m *RoleGrantMapperImpl) ToDomain(model *models.RoleGrantModel) (user.RoleGrant, error) {
	if model.Permanent {
		return user.NewPermanentRoleGrant(model.UserID, model.Role)
	}
	if model.ValidFrom == nil || model.ValidTo == nil {
		return user.RoleGrant{}, fmt.Errorf("temporary role grant %d has no validity window", model.ID)
	}
	return user.NewTemporaryRoleGrant(
		model.UserID,
		model.Role,
		time.UnixMilli(*model.ValidFrom).UTC(),
		time.UnixMilli(*model.ValidTo).UTC(),
	)
}
