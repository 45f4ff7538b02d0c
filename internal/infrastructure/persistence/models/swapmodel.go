package models

// SwapRequestModel persists exchange requests.
type SwapRequestModel struct {
	ID           string `gorm:"primaryKey;size:36"`
	RequesterID  string `gorm:"size:32;not null;index"`
	SubstituteID string `gorm:"size:32;not null;index"`
	AllocationID string `gorm:"size:36;not null;index"`
	Status       string `gorm:"size:10;not null;index"`
	Reason       string `gorm:"type:text;not null"`
	ResponderID  string `gorm:"size:32"`
	ResponseNote string `gorm:"type:text"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	RespondedAt  *int64
}

func (SwapRequestModel) TableName() string {
	return "swap_requests"
}

// DebtEntryModel persists the debt sub-ledger.
type DebtEntryModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	DebtorID   string `gorm:"size:32;not null;index"`
	CreditorID string `gorm:"size:32;not null;index"`
	SwapID     string `gorm:"size:36;not null;index"`
	Status     string `gorm:"size:10;not null;index"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	PaidAt     *int64
}

func (DebtEntryModel) TableName() string {
	return "debt_entries"
}
