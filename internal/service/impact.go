package service

import (
	"errors"
	"fmt"

	"impact-report-backend/internal/database/models"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/impact"
	"impact-report-backend/internal/metrics"
	"impact-report-backend/internal/repository"
	"impact-report-backend/internal/token"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImpactDonor is the donor part of a public impact page. The email is
// deliberately absent.
type ImpactDonor struct {
	FirstName     string           `json:"firstName"`
	LastName      string           `json:"lastName"`
	TotalGiving   decimal.Decimal  `json:"totalGiving"`
	FirstGiftDate *string          `json:"firstGiftDate,omitempty"`
	LastGiftDate  *string          `json:"lastGiftDate,omitempty"`
	LargestGift   *decimal.Decimal `json:"largestGift,omitempty"`
	GiftCount     *int             `json:"giftCount,omitempty"`
}

// ImpactOrganization is the branding shown on a public impact page
type ImpactOrganization struct {
	Name             string `json:"name"`
	LogoURL          string `json:"logoUrl,omitempty"`
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
	ThankYouMessage  string `json:"thankYouMessage,omitempty"`
	ThankYouVideoURL string `json:"thankYouVideoUrl,omitempty"`
}

// ImpactPageResponse is the public impact page payload
type ImpactPageResponse struct {
	Donor          ImpactDonor        `json:"donor"`
	Organization   ImpactOrganization `json:"organization"`
	Impact         impact.Metrics     `json:"impact"`
	FormattedTotal string             `json:"formattedTotal"`
	ShareURL       string             `json:"shareUrl"`
}

// ImpactService serves public impact pages
type ImpactService struct {
	donorRepo     repository.DonorRepositoryInterface
	orgRepo       repository.OrganizationRepositoryInterface
	publicBaseURL string
}

// NewImpactService creates a new impact service
func NewImpactService(donorRepo repository.DonorRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, publicBaseURL string) *ImpactService {
	return &ImpactService{
		donorRepo:     donorRepo,
		orgRepo:       orgRepo,
		publicBaseURL: publicBaseURL,
	}
}

// GetByToken resolves an impact URL token. Metrics are recomputed from the
// donor's total and the organization's current coefficients on every call.
func (s *ImpactService) GetByToken(impactURL string) (*ImpactPageResponse, error) {
	if !token.Valid(impactURL) {
		metrics.ObserveImpactView(false)
		return nil, apperrors.ErrImpactPageNotFound
	}

	donor, err := s.donorRepo.GetByImpactURL(impactURL)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.ObserveImpactView(false)
			return nil, apperrors.ErrImpactPageNotFound
		}
		return nil, fmt.Errorf("failed to get donor by impact url: %w", err)
	}

	org, err := s.orgRepo.GetByID(donor.OrganizationID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get organization: %w", err)
		}
		org = models.NewDefaultOrganization("", "")
	}

	metrics.ObserveImpactView(true)
	return &ImpactPageResponse{
		Donor: ImpactDonor{
			FirstName:     donor.FirstName,
			LastName:      donor.LastName,
			TotalGiving:   donor.TotalGiving,
			FirstGiftDate: formatDate(donor.FirstGiftDate),
			LastGiftDate:  formatDate(donor.LastGiftDate),
			LargestGift:   donor.LargestGift,
			GiftCount:     donor.GiftCount,
		},
		Organization: ImpactOrganization{
			Name:             org.Name,
			LogoURL:          org.LogoURL,
			PrimaryColor:     org.PrimaryColor,
			SecondaryColor:   org.SecondaryColor,
			ThankYouMessage:  org.ThankYouMessage,
			ThankYouVideoURL: org.ThankYouVideoURL,
		},
		Impact:         impact.Compute(donor.TotalGiving.InexactFloat64(), OverridesFor(org)),
		FormattedTotal: FormatUSD(donor.TotalGiving),
		ShareURL:       ShareURL(s.publicBaseURL, donor.ImpactURL),
	}, nil
}

// FormatUSD renders an amount as US dollars, e.g. "$1,250.50"
func FormatUSD(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
