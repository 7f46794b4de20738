package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact method and form source enum values
const (
	ContactMethodEmail    = "email"
	ContactMethodPhone    = "phone"
	ContactMethodWhatsapp = "whatsapp"

	SourceHome    = "home"
	SourceContact = "contact"

	DefaultSubject = "No Subject"
)

// Basic local@domain.tld shape check, same as the client-side validation
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Contact represents a single contact-form submission.
type Contact struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"not null" json:"email"`
	Subject       string    `json:"subject"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	Phone         string    `json:"phone,omitempty"`
	ContactMethod string    `json:"contactMethod"`
	Source        string    `gorm:"index" json:"source"`
	CreatedAt     time.Time `gorm:"index:idx_contacts_created_at,sort:desc" json:"createdAt"`
}

// BeforeCreate assigns a UUID and fills in the documented defaults:
// subject "No Subject", contact method "email", source "home".
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.Name = strings.TrimSpace(c.Name)
	c.Email = NormalizeEmail(c.Email)
	c.Message = strings.TrimSpace(c.Message)
	c.Subject = strings.TrimSpace(c.Subject)
	if c.Subject == "" {
		c.Subject = DefaultSubject
	}
	if c.ContactMethod == "" {
		c.ContactMethod = ContactMethodEmail
	}
	if c.Source == "" {
		c.Source = SourceHome
	}
	return nil
}

// IsValidEmail reports whether the address matches the basic
// local@domain.tld pattern used by the submit endpoint.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}
