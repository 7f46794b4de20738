package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kaifdev/portfolio-api/internal/auth"
	"github.com/kaifdev/portfolio-api/internal/models"
	"github.com/kaifdev/portfolio-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupAuthRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	controller := NewAuthController(services.NewAdminService(db), testSecret)

	router := gin.New()
	authGroup := router.Group("/api/auth")
	authGroup.POST("/login", controller.Login)
	authGroup.POST("/create", controller.CreateAdmin)

	return router
}

func seedAdmin(t *testing.T, db *gorm.DB) *models.Admin {
	admin, err := services.NewAdminService(db).CreateAdmin("admin@example.com", "secret123")
	require.NoError(t, err)
	return admin
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	router := setupAuthRouter(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Admin   struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"admin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "admin@example.com", resp.Admin.Email)

	// The issued token passes the same verification the gate uses
	identity, err := auth.ParseToken(resp.Token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, resp.Admin.ID, identity.AdminID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	router := setupAuthRouter(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid credentials", resp.Message)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	router := setupAuthRouter(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid credentials", resp.Message)
}

func TestLoginMissingFields(t *testing.T) {
	db := setupTestDB(t)
	router := setupAuthRouter(t, db)

	w := postJSON(router, "/api/auth/login", gin.H{"email": "admin@example.com"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAdmin(t *testing.T) {
	db := setupTestDB(t)
	router := setupAuthRouter(t, db)

	w := postJSON(router, "/api/auth/create", gin.H{
		"email":    "admin@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Admin created successfully", resp.Message)

	// The password hash never appears in the response
	assert.NotContains(t, w.Body.String(), "secret123")
}

func TestCreateAdminDuplicate(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	router := setupAuthRouter(t, db)

	w := postJSON(router, "/api/auth/create", gin.H{
		"email":    "ADMIN@example.com",
		"password": "other",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Admin already exists", resp.Message)
}
