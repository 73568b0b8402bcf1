package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"impact-report-backend/internal/database/models"
	apperrors "impact-report-backend/internal/errors"
	"impact-report-backend/internal/repository"
	"impact-report-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	AdminID              uuid.UUID `json:"admin_id" example:"6f1c2b9e-7d5a-4a57-9f0e-2d1c3b4a5e6f"`
	Email                string    `json:"email" example:"director@foodbank.org"`
	OrganizationID       uuid.UUID `json:"organization_id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest creates an admin account and its organization
type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email,max=255" example:"director@foodbank.org"`
	Password         string `json:"password" validate:"required,min=8,max=72"`
	OrganizationName string `json:"organizationName" validate:"omitempty,max=200" example:"Harvest Hope Food Bank"`
}

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminProfile is the public view of an admin account
type AdminProfile struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	OrganizationID uuid.UUID `json:"organizationId"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64        `json:"expiresIn" example:"86400"`
	Admin       AdminProfile `json:"admin"`
}

// AuthService registers admins and issues their tokens
type AuthService struct {
	config    *AuthConfig
	adminRepo repository.AdminRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, adminRepo repository.AdminRepositoryInterface, validator *validator.Validate) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:    config,
		adminRepo: adminRepo,
		validator: validator,
		now:       time.Now,
	}, nil
}

// Register creates an admin together with a default organization profile
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	email := normalizeEmail(req.Email)

	existing, err := s.adminRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	org := models.NewDefaultOrganization(strings.TrimSpace(req.OrganizationName), "")
	org.Slug = service.OrganizationSlug(org.Name, org.ID)
	admin := &models.Admin{Email: email, PasswordHash: string(hash)}

	if err := s.adminRepo.CreateWithOrganization(admin, org); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	return s.issue(admin)
}

// Login checks the credentials and issues a token
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	admin, err := s.adminRepo.GetByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(admin)
}

func (s *AuthService) issue(admin *models.Admin) (*AuthResponse, error) {
	signed, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		Admin: AdminProfile{
			ID:             admin.ID,
			Email:          admin.Email,
			OrganizationID: admin.OrganizationID,
		},
	}, nil
}

// GenerateJWT creates a signed token for the admin
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		AdminID:        admin.ID,
		Email:          admin.Email,
		OrganizationID: admin.OrganizationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   admin.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.OrganizationID == uuid.Nil {
			return nil, fmt.Errorf("token has no organization")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
