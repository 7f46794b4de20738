package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaifdev/portfolio-api/internal/mailer"
	"github.com/kaifdev/portfolio-api/internal/models"
	"github.com/kaifdev/portfolio-api/internal/services"
	log "github.com/sirupsen/logrus"
)

// ContactController handles HTTP requests for contact-form submissions
type ContactController interface {
	// Submit stores a new contact submission and notifies the admin
	Submit(c *gin.Context)
	// GetAll lists every submission for the admin dashboard
	GetAll(c *gin.Context)
	// Delete removes a submission by id
	Delete(c *gin.Context)
}

type contactController struct {
	service services.ContactService
	mailer  mailer.Mailer
}

// NewContactController creates a new instance of ContactController
func NewContactController(service services.ContactService, mailer mailer.Mailer) ContactController {
	return &contactController{service: service, mailer: mailer}
}

// submitRequest is the accepted contact-form payload
type submitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	Phone         string `json:"phone"`
	ContactMethod string `json:"contactMethod"`
	Source        string `json:"source"`
}

// submitResult is the data payload returned after a successful submission
type submitResult struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	CreatedAt string `json:"createdAt"`
}

// Submit godoc
// @Summary Submit a contact form
// @Description Store a contact-form submission and send a notification email
// @Tags contact
// @Accept json
// @Produce json
// @Param submission body submitRequest true "Contact form fields"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.Response
// @Failure 500 {object} models.Response
// @Router /api/contact/submit [post]
func (cc *contactController) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Fail("Invalid request body"))
		return
	}

	// Validate before any persistence attempt
	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, models.Fail("Name, email and message are required"))
		return
	}
	if !models.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, models.Fail("Please enter a valid email address"))
		return
	}

	contact := models.Contact{
		Name:          req.Name,
		Email:         req.Email,
		Subject:       req.Subject,
		Message:       req.Message,
		Phone:         req.Phone,
		ContactMethod: req.ContactMethod,
		Source:        req.Source,
	}

	saved, err := cc.service.Submit(contact)
	if err != nil {
		log.WithError(err).Error("Failed to save contact submission")
		c.JSON(http.StatusInternalServerError, models.Fail("Server error. Please try again later."))
		return
	}

	log.WithFields(log.Fields{
		"contact_id": saved.ID,
		"source":     saved.Source,
	}).Info("Contact submission saved")

	// Best-effort notification: a mail failure never fails the request and
	// never rolls back the stored record
	if err := cc.mailer.SendContactNotification(saved); err != nil {
		log.WithError(err).Error("Failed to send contact notification email")
	}

	c.JSON(http.StatusCreated, models.OK(
		"Thank you! Your message has been sent successfully.",
		submitResult{
			ID:        saved.ID,
			Source:    saved.Source,
			CreatedAt: saved.CreatedAt.UTC().Format(time.RFC3339),
		},
	))
}

// GetAll godoc
// @Summary List all contact submissions
// @Description Return every stored submission, newest first
// @Tags contact
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.Response
// @Failure 500 {object} models.Response
// @Security TokenAuth
// @Router /api/contact/all [get]
func (cc *contactController) GetAll(c *gin.Context) {
	contacts, err := cc.service.ListAll()
	if err != nil {
		log.WithError(err).Error("Failed to list contacts")
		c.JSON(http.StatusInternalServerError, models.Fail("Error fetching contacts"))
		return
	}
	c.JSON(http.StatusOK, models.OKList(contacts, len(contacts)))
}

// Delete godoc
// @Summary Delete a contact submission
// @Description Remove a submission by id. Also reachable as POST /api/contact/delete/{id}, the dashboard's fallback delete route.
// @Tags contact
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.Response
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.Response
// @Security TokenAuth
// @Router /api/contact/{id} [delete]
func (cc *contactController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := cc.service.DeleteByID(id); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, models.Fail("Contact not found"))
			return
		}
		log.WithError(err).Error("Failed to delete contact")
		c.JSON(http.StatusInternalServerError, models.Fail("Error deleting contact"))
		return
	}

	log.WithField("contact_id", id).Info("Contact deleted")
	c.JSON(http.StatusOK, models.OK("Contact deleted successfully", nil))
}
