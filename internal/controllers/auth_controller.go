package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaifdev/portfolio-api/internal/auth"
	"github.com/kaifdev/portfolio-api/internal/models"
	"github.com/kaifdev/portfolio-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// AuthController handles admin login and creation
type AuthController struct {
	adminService services.AdminService
	jwtSecret    []byte
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(adminService services.AdminService, jwtSecret string) *AuthController {
	return &AuthController{
		adminService: adminService,
		jwtSecret:    []byte(jwtSecret),
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// adminSummary is the admin payload returned on login. The password hash
// never leaves the server.
type adminSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// loginResponse extends the envelope with the token field the dashboard expects
type loginResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	Admin   adminSummary `json:"admin"`
}

// Login godoc
// @Summary Admin login
// @Description Validate admin credentials and issue a 7-day session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Admin credentials"
// @Success 200 {object} loginResponse
// @Failure 401 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, models.Fail("Invalid credentials"))
		return
	}

	admin, err := ac.adminService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.WithField("email", req.Email).Warn("Failed login attempt")
			c.JSON(http.StatusUnauthorized, models.Fail("Invalid credentials"))
			return
		}
		log.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, models.Fail("Server error"))
		return
	}

	token, err := auth.IssueToken(admin, ac.jwtSecret)
	if err != nil {
		log.WithError(err).Error("Failed to sign session token")
		c.JSON(http.StatusInternalServerError, models.Fail("Server error"))
		return
	}

	log.WithField("email", admin.Email).Info("Admin login successful")
	c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		Admin:   adminSummary{ID: admin.ID, Email: admin.Email},
	})
}

// CreateAdmin godoc
// @Summary Create an admin
// @Description Create a new admin account with a hashed password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body credentialsRequest true "Admin credentials"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /api/auth/create [post]
func (ac *AuthController) CreateAdmin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Email and password are required"))
		return
	}

	if _, err := ac.adminService.CreateAdmin(req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			c.JSON(http.StatusBadRequest, models.Fail("Admin already exists"))
			return
		}
		log.WithError(err).Error("Failed to create admin")
		c.JSON(http.StatusInternalServerError, models.Fail("Server error"))
		return
	}

	log.WithField("email", req.Email).Info("Admin created")
	c.JSON(http.StatusCreated, models.OK("Admin created successfully", nil))
}
