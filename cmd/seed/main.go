package main

import (
	"log"
	"os"
	"time"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/model"
	"github.com/SudeepMalipeddi/Service-Sphere/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the service catalog and a default admin account. Safe to run more
// than once: existing rows are left alone.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding service catalog...")
	seedServices(db)

	color.Cyan("Seeding admin account...")
	seedAdmin(db)

	color.Green("✅ Seeding completed")
}

func seedServices(db *gorm.DB) {
	services := []model.Service{
		{Name: "Plumbing", BasePrice: 499, EstimatedTime: 60, Description: "Leak fixes, tap and pipe work", IsActive: true},
		{Name: "Electrical", BasePrice: 599, EstimatedTime: 90, Description: "Wiring, switches and appliance hookups", IsActive: true},
		{Name: "Cleaning", BasePrice: 799, EstimatedTime: 180, Description: "Full home deep cleaning", IsActive: true},
		{Name: "Carpentry", BasePrice: 699, EstimatedTime: 120, Description: "Furniture assembly and repairs", IsActive: true},
		{Name: "Painting", BasePrice: 1499, EstimatedTime: 480, Description: "Interior wall painting", IsActive: true},
		{Name: "Pest Control", BasePrice: 999, EstimatedTime: 120, Description: "Cockroach, termite and rodent treatment", IsActive: true},
	}

	for _, svc := range services {
		var existing model.Service
		err := db.Where("name = ?", svc.Name).First(&existing).Error
		if err == nil {
			color.Yellow("  - %s already present, skipping", svc.Name)
			continue
		}

		svc.Id = uuid.New()
		svc.CreatedAt = time.Now()
		svc.UpdatedAt = time.Now()
		if err := db.Create(&svc).Error; err != nil {
			color.Red("  - failed to seed %s: %v", svc.Name, err)
			continue
		}
		color.Green("  - seeded %s", svc.Name)
	}
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@servicesphere.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("  - ADMIN_PASSWORD not set, using the default (change it!)")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("  - admin %s already present, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("  - failed to hash admin password: %v", err)
		return
	}

	admin := model.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         "admin",
		Active:       true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("  - failed to seed admin: %v", err)
		return
	}
	color.Green("  - seeded admin %s", email)
}
