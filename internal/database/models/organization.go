package models

import (
	"github.com/google/uuid"
)

// Default branding applied when an organization profile is first created
const (
	DefaultOrganizationName = "My Food Bank"
	DefaultPrimaryColor     = "#0F766E"
	DefaultSecondaryColor   = "#F59E0B"
	DefaultThankYouMessage  = "Thank you for helping us fight hunger in our community!"
)

// Organization is the food bank profile that owns donors, branding and
// impact coefficient overrides. Nil coefficient columns mean "use the default".
type Organization struct {
	BaseModel
	Name             string `json:"name" gorm:"not null;size:200"`
	Slug             string `json:"slug" gorm:"uniqueIndex;not null;size:220"`
	LogoURL          string `json:"logo_url" gorm:"size:2000"`
	PrimaryColor     string `json:"primary_color" gorm:"size:7;not null"`
	SecondaryColor   string `json:"secondary_color" gorm:"size:7;not null"`
	ThankYouMessage  string `json:"thank_you_message" gorm:"type:text"`
	ThankYouVideoURL string `json:"thank_you_video_url" gorm:"size:2000"`

	DollarsPerMeal *float64 `json:"dollars_per_meal,omitempty"`
	MealsPerPerson *float64 `json:"meals_per_person,omitempty"`
	PoundsPerMeal  *float64 `json:"pounds_per_meal,omitempty"`
	CO2PerPound    *float64 `json:"co2_per_pound,omitempty" gorm:"column:co2_per_pound"`
	WaterPerPound  *float64 `json:"water_per_pound,omitempty"`

	// Relationships
	Donors []Donor `json:"donors,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// NewDefaultOrganization returns an unsaved profile populated with default branding
func NewDefaultOrganization(name, slug string) *Organization {
	if name == "" {
		name = DefaultOrganizationName
	}
	return &Organization{
		BaseModel:       BaseModel{ID: uuid.New()},
		Name:            name,
		Slug:            slug,
		PrimaryColor:    DefaultPrimaryColor,
		SecondaryColor:  DefaultSecondaryColor,
		ThankYouMessage: DefaultThankYouMessage,
	}
}
