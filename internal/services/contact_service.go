package services

import (
	"errors"

	"github.com/kaifdev/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// ErrContactNotFound is returned when no contact matches the given id
var ErrContactNotFound = errors.New("contact not found")

// ContactService provides methods to manage contact-form submissions
type ContactService interface {
	// Submit persists a new contact submission and returns the stored record
	Submit(contact models.Contact) (models.Contact, error)
	// ListAll retrieves every contact, newest first
	ListAll() ([]models.Contact, error)
	// DeleteByID removes a contact by id, returning ErrContactNotFound on a miss
	DeleteByID(id string) error
}

// contactService is the GORM-backed implementation of ContactService
type contactService struct {
	db *gorm.DB
}

// NewContactService creates a new instance of ContactService
func NewContactService(db *gorm.DB) ContactService {
	return &contactService{db: db}
}

func (s *contactService) Submit(contact models.Contact) (models.Contact, error) {
	if err := s.db.Create(&contact).Error; err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (s *contactService) ListAll() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := s.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *contactService) DeleteByID(id string) error {
	result := s.db.Delete(&models.Contact{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	// A repeated delete of the same id is a miss, not a silent success
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
