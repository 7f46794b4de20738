package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/kaifdev/portfolio-api/docs" // Import generated docs
	"github.com/kaifdev/portfolio-api/internal/config"
	"github.com/kaifdev/portfolio-api/internal/controllers"
	"github.com/kaifdev/portfolio-api/internal/database"
	"github.com/kaifdev/portfolio-api/internal/mailer"
	"github.com/kaifdev/portfolio-api/internal/middleware"
	"github.com/kaifdev/portfolio-api/internal/models"
	"github.com/kaifdev/portfolio-api/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
)

var startTime = time.Now()

// @title Portfolio API
// @version 1.0
// @description Backend API for a personal portfolio website: contact-form submissions and an admin dashboard behind a JWT login.
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-auth-token
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Connect to the database, degrading to mock mode if it is unreachable
	contactService, adminService, notifier := buildServices(configuration)

	contactController := controllers.NewContactController(contactService, notifier)
	authController := controllers.NewAuthController(adminService, configuration.JWTSecret)

	// Initialize Gin router
	router := setupRouter(configuration, contactController, authController)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	if err := router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	return conf
}

// buildServices connects to the database and constructs the real services,
// or falls back to mock implementations with canned responses when the
// database is unreachable. The site stays up either way.
func buildServices(conf *config.Config) (services.ContactService, services.AdminService, mailer.Mailer) {
	db, err := database.Connect(database.FromAppConfig(conf))
	if err != nil {
		log.WithError(err).Warn("Database not available, running in mock mode")
		return services.NewMockContactService(),
			services.NewMockAdminService(conf.MockAdminEmail, conf.MockAdminPassword),
			mailer.NewNoopMailer()
	}

	var notifier mailer.Mailer
	if conf.SMTPHost != "" && conf.AdminEmail != "" {
		notifier = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:       conf.SMTPHost,
			Port:       conf.SMTPPort,
			Username:   conf.SMTPUser,
			Password:   conf.SMTPPass,
			FromEmail:  conf.FromEmail,
			FromName:   "Portfolio Contact Form",
			AdminEmail: conf.AdminEmail,
		})
	} else {
		log.Warn("SMTP not configured, contact notifications disabled")
		notifier = mailer.NewNoopMailer()
	}

	return services.NewContactService(db), services.NewAdminService(db), notifier
}

// setupRouter builds the Gin engine: CORS policy, recovery, routes
func setupRouter(conf *config.Config, contactController controllers.ContactController, authController *controllers.AuthController) *gin.Engine {
	if !conf.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(recoveryHandler(conf))
	router.Use(corsPolicy(conf))

	setupRoutes(router, conf, contactController, authController)

	return router
}

// corsPolicy allows the configured origins plus any subdomain of the trusted
// deployment domain. The custom x-auth-token header must be both allowed and
// exposed for the dashboard to work cross-origin.
func corsPolicy(conf *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(conf.AllowedOrigins))
	for _, origin := range conf.AllowedOrigins {
		allowed[origin] = true
	}

	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if allowed[origin] {
				return true
			}
			return conf.TrustedDomain != "" && strings.HasSuffix(origin, "."+conf.TrustedDomain)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", middleware.TokenHeader, "X-Requested-With"},
		ExposeHeaders:    []string{middleware.TokenHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// recoveryHandler converts panics into the generic 500 envelope. Error
// details are only echoed back in development mode.
func recoveryHandler(conf *config.Config) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		log.WithField("panic", recovered).Error("Unhandled server error")
		resp := models.Fail("Internal server error")
		if conf.IsDevelopment() {
			resp.Data = gin.H{"error": fmt.Sprint(recovered)}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, conf *config.Config, contactController controllers.ContactController, authController *controllers.AuthController) {
	// Root API index
	router.GET("/", indexHandler(conf))

	api := router.Group("/api")
	{
		// Diagnostics
		api.GET("/health", healthCheckHandler(conf))
		api.GET("/test", testHandler(conf))
		api.GET("/cors-test", corsTestHandler(conf))

		// Public contact submission
		contact := api.Group("/contact")
		{
			contact.POST("/submit", contactController.Submit)

			// Protected admin routes
			protected := contact.Group("")
			protected.Use(middleware.TokenAuth([]byte(conf.JWTSecret)))
			{
				protected.GET("/all", contactController.GetAll)
				protected.DELETE("/:id", contactController.Delete)
				// Fallback delete route the dashboard calls when the DELETE
				// verb fails (optimistic-delete chain)
				protected.POST("/delete/:id", contactController.Delete)
			}
		}

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/create", authController.CreateAdmin)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 404s keep the JSON envelope
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Endpoint not found",
			Data: gin.H{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			},
		})
	})
}

// indexHandler describes the API surface
func indexHandler(conf *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Portfolio Backend API",
			"version": "1.0.0",
			"status":  "running",
			"endpoints": gin.H{
				"contact":    "/api/contact/submit (POST)",
				"contactAll": "/api/contact/all (GET - Admin)",
				"health":     "/api/health (GET)",
				"test":       "/api/test (GET)",
				"auth": gin.H{
					"login":  "/api/auth/login (POST)",
					"create": "/api/auth/create (POST)",
				},
			},
			"environment": conf.Environment,
		})
	}
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func healthCheckHandler(conf *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"environment": conf.Environment,
			"serverTime":  time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(startTime).String(),
		})
	}
}

// testHandler reports the live CORS and environment diagnostics
func testHandler(conf *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "API is working!",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": conf.Environment,
			"corsHeaders": gin.H{
				"allowedHeaders": []string{"Content-Type", "Authorization", middleware.TokenHeader, "X-Requested-With"},
				"allowedOrigins": conf.AllowedOrigins,
			},
		})
	}
}

// corsTestHandler echoes the request origin against the configured policy
func corsTestHandler(conf *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"message":        "CORS test successful",
			"yourOrigin":     c.GetHeader("Origin"),
			"allowedOrigins": conf.AllowedOrigins,
			"trustedDomain":  conf.TrustedDomain,
		})
	}
}
