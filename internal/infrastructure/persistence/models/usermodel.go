package models

// UserModel persists roster members. IDs are service numbers issued by the
// organization.
type UserModel struct {
	ID                string `gorm:"primaryKey;size:32"`
	Name              string `gorm:"size:100;not null"`
	Cohort            string `gorm:"size:50;not null;index"`
	Year              int64  `gorm:"not null;index"`
	Course            string `gorm:"size:100"`
	Gender            string `gorm:"size:1;not null"`
	NormalCount       int64  `gorm:"not null;default:0"`
	HeightenedCount   int64  `gorm:"not null;default:0"`
	PunishmentBalance int64  `gorm:"not null;default:0"`
	Version           int    `gorm:"not null;default:1"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

// RoleGrantModel persists both permanent and temporary role grants. A
// permanent grant has no window; a temporary one carries [ValidFrom, ValidTo)
// as UTC millis.
type RoleGrantModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:32;not null;index"`
	Role      string `gorm:"size:100;not null;index"`
	Permanent bool   `gorm:"not null;default:false"`
	ValidFrom *int64
	ValidTo   *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (RoleGrantModel) TableName() string {
	return "role_grants"
}
