package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/kaifdev/portfolio-api/internal/models"
	log "github.com/sirupsen/logrus"
)

// Mock implementations back the degraded "mock mode" the server enters when
// the database is unreachable: submissions are acknowledged but not stored,
// the admin list is empty, and login only works for the configured mock
// admin. Availability over consistency for a low-stakes personal site.

type mockContactService struct{}

// NewMockContactService returns a ContactService that serves canned responses
func NewMockContactService() ContactService {
	return &mockContactService{}
}

func (s *mockContactService) Submit(contact models.Contact) (models.Contact, error) {
	log.WithFields(log.Fields{
		"name":   contact.Name,
		"email":  contact.Email,
		"source": contact.Source,
	}).Warn("Contact form received in mock mode, submission not persisted")

	contact.ID = "mock_" + uuid.NewString()
	if contact.Subject == "" {
		contact.Subject = models.DefaultSubject
	}
	if contact.ContactMethod == "" {
		contact.ContactMethod = models.ContactMethodEmail
	}
	if contact.Source == "" {
		contact.Source = models.SourceHome
	}
	contact.CreatedAt = time.Now().UTC()
	return contact, nil
}

func (s *mockContactService) ListAll() ([]models.Contact, error) {
	return []models.Contact{}, nil
}

func (s *mockContactService) DeleteByID(id string) error {
	return nil
}

type mockAdminService struct {
	email    string
	password string
}

// NewMockAdminService returns an AdminService that accepts a single
// configured email/password pair. Credentials come from configuration, never
// from literals in source.
func NewMockAdminService(email, password string) AdminService {
	return &mockAdminService{email: models.NormalizeEmail(email), password: password}
}

func (s *mockAdminService) Authenticate(email, password string) (*models.Admin, error) {
	if s.email == "" || models.NormalizeEmail(email) != s.email || password != s.password {
		return nil, ErrInvalidCredentials
	}
	return &models.Admin{
		ID:        "mock_admin_id",
		Email:     s.email,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *mockAdminService) CreateAdmin(email, password string) (*models.Admin, error) {
	log.WithField("email", email).Warn("Admin creation requested in mock mode, nothing persisted")
	return &models.Admin{
		ID:        "mock_admin_id",
		Email:     models.NormalizeEmail(email),
		CreatedAt: time.Now().UTC(),
	}, nil
}
