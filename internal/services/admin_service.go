package services

import (
	"errors"

	"github.com/kaifdev/portfolio-api/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrAdminExists is returned when creating an admin whose email is taken
	ErrAdminExists = errors.New("admin already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// callers cannot distinguish the two
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminService provides admin credential management and verification
type AdminService interface {
	// Authenticate validates an email/password pair and returns the admin on success
	Authenticate(email, password string) (*models.Admin, error)
	// CreateAdmin stores a new admin with a hashed password
	CreateAdmin(email, password string) (*models.Admin, error)
}

// adminService is the GORM-backed implementation of AdminService
type adminService struct {
	db *gorm.DB
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(db *gorm.DB) AdminService {
	return &adminService{db: db}
}

func (s *adminService) Authenticate(email, password string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.Where("email = ?", models.NormalizeEmail(email)).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !admin.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

func (s *adminService) CreateAdmin(email, password string) (*models.Admin, error) {
	var existing models.Admin
	err := s.db.Where("email = ?", models.NormalizeEmail(email)).First(&existing).Error
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	admin := models.Admin{Email: email, Password: password}
	if err := admin.HashPassword(); err != nil {
		return nil, err
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
