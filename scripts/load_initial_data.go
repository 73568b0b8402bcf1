package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"impact-report-backend/internal/config"
	"impact-report-backend/internal/database"
	"impact-report-backend/internal/database/models"
	"impact-report-backend/internal/ingest"
	"impact-report-backend/internal/repository"
	"impact-report-backend/internal/service"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed file structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type OrganizationData struct {
	Name             string           `yaml:"name"`
	LogoURL          string           `yaml:"logo_url,omitempty"`
	PrimaryColor     string           `yaml:"primary_color,omitempty"`
	SecondaryColor   string           `yaml:"secondary_color,omitempty"`
	ThankYouMessage  string           `yaml:"thank_you_message,omitempty"`
	ThankYouVideoURL string           `yaml:"thank_you_video_url,omitempty"`
	Coefficients     CoefficientsData `yaml:"coefficients,omitempty"`
	Admin            AdminData        `yaml:"admin"`
	Donors           []map[string]any `yaml:"donors,omitempty"`
}

type CoefficientsData struct {
	DollarsPerMeal *float64 `yaml:"dollars_per_meal,omitempty"`
	MealsPerPerson *float64 `yaml:"meals_per_person,omitempty"`
	PoundsPerMeal  *float64 `yaml:"pounds_per_meal,omitempty"`
	CO2PerPound    *float64 `yaml:"co2_per_pound,omitempty"`
	WaterPerPound  *float64 `yaml:"water_per_pound,omitempty"`
}

type AdminData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(context.Background(), db, cfg, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DSN(), opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, cfg *config.Config, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	orgRepo := repository.NewOrganizationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	donorService := service.NewDonorService(repository.NewDonorRepository(db), orgRepo, cfg.PublicBaseURL)

	orgCreated, donorsImported, donorsSkipped := 0, 0, 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(adminRepo, orgRepo, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		if created {
			orgCreated++
		}
		if len(orgData.Donors) == 0 {
			continue
		}

		rows := make([]ingest.RawRow, len(orgData.Donors))
		for i, values := range orgData.Donors {
			rows[i] = ingest.RowFromValues(values)
		}
		summary, err := donorService.ImportDonors(ctx, org.ID, ingest.ValidateRows(rows))
		if err != nil {
			return fmt.Errorf("failed to import donors for %s: %w", orgData.Name, err)
		}
		for _, rowErr := range summary.Errors {
			log.Printf("⚠️  %s donor row %d is invalid: %+v", orgData.Name, rowErr.Row, rowErr.Errors)
		}
		donorsImported += summary.TotalProcessed
		donorsSkipped += len(summary.Duplicates)
	}

	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))
	log.Printf("📋 Donors: %d imported, %d already present", donorsImported, donorsSkipped)
	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

// createOrganization is keyed by the admin email so reruns leave existing
// profiles untouched
func createOrganization(adminRepo repository.AdminRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, orgData OrganizationData) (*models.Organization, bool, error) {
	email := strings.ToLower(strings.TrimSpace(orgData.Admin.Email))
	if email == "" || orgData.Admin.Password == "" {
		return nil, false, fmt.Errorf("admin email and password are required")
	}

	admin, err := adminRepo.GetByEmail(email)
	if err == nil {
		org, err := orgRepo.GetByID(admin.OrganizationID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to query organization: %w", err)
		}
		return org, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(orgData.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	org := models.NewDefaultOrganization(orgData.Name, "")
	org.Slug = service.OrganizationSlug(org.Name, org.ID)
	org.LogoURL = orgData.LogoURL
	if orgData.PrimaryColor != "" {
		org.PrimaryColor = orgData.PrimaryColor
	}
	if orgData.SecondaryColor != "" {
		org.SecondaryColor = orgData.SecondaryColor
	}
	if orgData.ThankYouMessage != "" {
		org.ThankYouMessage = orgData.ThankYouMessage
	}
	org.ThankYouVideoURL = orgData.ThankYouVideoURL
	org.DollarsPerMeal = orgData.Coefficients.DollarsPerMeal
	org.MealsPerPerson = orgData.Coefficients.MealsPerPerson
	org.PoundsPerMeal = orgData.Coefficients.PoundsPerMeal
	org.CO2PerPound = orgData.Coefficients.CO2PerPound
	org.WaterPerPound = orgData.Coefficients.WaterPerPound

	admin = &models.Admin{Email: email, PasswordHash: string(hash)}
	if err := adminRepo.CreateWithOrganization(admin, org); err != nil {
		return nil, false, fmt.Errorf("failed to create organization: %w", err)
	}
	return org, true, nil
}
