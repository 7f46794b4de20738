package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kaifdev/portfolio-api/internal/config"
	"github.com/kaifdev/portfolio-api/internal/database"
	"github.com/kaifdev/portfolio-api/internal/models"
	"github.com/kaifdev/portfolio-api/internal/services"
)

// Seeds the first admin account. Credentials come from flags or environment
// variables, never from literals in source.
func main() {
	email := flag.String("email", "", "Admin email (falls back to SEED_ADMIN_EMAIL)")
	password := flag.String("password", "", "Admin password (falls back to SEED_ADMIN_PASSWORD)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if *email == "" {
		*email = config.GetEnvWithDefault("SEED_ADMIN_EMAIL", "")
	}
	if *password == "" {
		*password = config.GetEnvWithDefault("SEED_ADMIN_PASSWORD", "")
	}
	if *email == "" || *password == "" {
		log.Fatal("Admin email and password are required (flags or SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD)")
	}

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Connect(database.FromAppConfig(conf))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	adminService := services.NewAdminService(db)
	admin, err := adminService.CreateAdmin(*email, *password)
	if err == services.ErrAdminExists {
		fmt.Printf("Admin already exists: %s\n", models.NormalizeEmail(*email))
	} else if err != nil {
		log.Fatal("Failed to create admin:", err)
	} else {
		fmt.Printf("Admin created: %s (id %s)\n", admin.Email, admin.ID)
	}

	// List all admins
	var admins []models.Admin
	if err := db.Order("created_at").Find(&admins).Error; err != nil {
		log.Fatal("Failed to list admins:", err)
	}
	fmt.Println("Admins in database:")
	for _, a := range admins {
		fmt.Printf("  - %s (created: %s)\n", a.Email, a.CreatedAt.Format("2006-01-02"))
	}
}
