package migration

import (
	"escala/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RoleGrantModel{},
		&models.PostModel{},
		&models.RosterDayModel{},
		&models.AllocationModel{},
		&models.UnavailabilityWindowModel{},
		&models.SwapRequestModel{},
		&models.DebtEntryModel{},
	}
}
