package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Donor is a single donor record uploaded by an organization.
// Email and ImpactURL are unique across all organizations.
type Donor struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	FirstName      string           `json:"first_name" gorm:"not null;size:100"`
	LastName       string           `json:"last_name" gorm:"not null;size:100"`
	Email          string           `json:"email" gorm:"uniqueIndex;not null;size:255"`
	TotalGiving    decimal.Decimal  `json:"total_giving" gorm:"type:numeric(14,2);not null;default:0"`
	FirstGiftDate  *time.Time       `json:"first_gift_date,omitempty" gorm:"type:date"`
	LastGiftDate   *time.Time       `json:"last_gift_date,omitempty" gorm:"type:date"`
	LargestGift    *decimal.Decimal `json:"largest_gift,omitempty" gorm:"type:numeric(14,2)"`
	GiftCount      *int             `json:"gift_count,omitempty"`
	ImpactURL      string           `json:"impact_url" gorm:"uniqueIndex;not null;size:64"`
}

// TableName returns the table name for Donor
func (Donor) TableName() string {
	return "donors"
}

// FullName joins first and last name for display
func (d *Donor) FullName() string {
	if d.LastName == "" {
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}
