package services

import (
	"testing"
	"time"

	"github.com/kaifdev/portfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Admin{}, &models.Contact{})
	require.NoError(t, err)

	return db
}

func TestSubmitPersistsWithDefaults(t *testing.T) {
	db := setupTestDB(t)
	service := NewContactService(db)

	saved, err := service.Submit(models.Contact{
		Name:    "A",
		Email:   "a@b.com",
		Message: "hi",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "No Subject", saved.Subject)
	assert.Equal(t, "home", saved.Source)
	assert.Equal(t, "email", saved.ContactMethod)

	var count int64
	db.Model(&models.Contact{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitKeepsProvidedFields(t *testing.T) {
	db := setupTestDB(t)
	service := NewContactService(db)

	saved, err := service.Submit(models.Contact{
		Name:          "Jane",
		Email:         "Jane@Example.COM",
		Subject:       "Project inquiry",
		Message:       "Let's talk",
		Phone:         "+123456789",
		ContactMethod: "whatsapp",
		Source:        "contact",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", saved.Email)
	assert.Equal(t, "Project inquiry", saved.Subject)
	assert.Equal(t, "whatsapp", saved.ContactMethod)
	assert.Equal(t, "contact", saved.Source)
}

func TestListAllNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	service := NewContactService(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		contact := models.Contact{
			Name:      name,
			Email:     name + "@example.com",
			Message:   "msg",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&contact).Error)
	}

	contacts, err := service.ListAll()
	require.NoError(t, err)
	require.Len(t, contacts, 3)

	assert.Equal(t, "third", contacts[0].Name)
	assert.Equal(t, "second", contacts[1].Name)
	assert.Equal(t, "first", contacts[2].Name)
}

func TestDeleteByID(t *testing.T) {
	db := setupTestDB(t)
	service := NewContactService(db)

	saved, err := service.Submit(models.Contact{Name: "A", Email: "a@b.com", Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteByID(saved.ID))

	contacts, err := service.ListAll()
	require.NoError(t, err)
	assert.Empty(t, contacts)

	// Deleting the same id again is a miss, not a silent success
	err = service.DeleteByID(saved.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestDeleteByIDUnknown(t *testing.T) {
	db := setupTestDB(t)
	service := NewContactService(db)

	err := service.DeleteByID("does-not-exist")
	assert.ErrorIs(t, err, ErrContactNotFound)
}
