package models

import (
	"github.com/google/uuid"
)

// Admin is a food bank administrator account. Each admin owns exactly one organization.
type Admin struct {
	BaseModel
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash   string    `json:"-" gorm:"not null;size:100"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for Admin
func (Admin) TableName() string {
	return "admins"
}
