package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"officedesk/internal/config"
	"officedesk/internal/models"
	"officedesk/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate all tables before seeding")
	flag.Parse()

	config.LoadEnv()

	adminEmail := config.GetEnv("ADMIN_EMAIL", "admin@company.com")
	adminPassword := config.GetEnv("ADMIN_PASSWORD", "admin123")
	adminName := config.GetEnv("ADMIN_NAME", "Super Admin")

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	if *reset {
		if err := repositories.ResetDatabase(); err != nil {
			log.Fatalf("Failed to reset database: %v", err)
		}
		log.Println("⚠️ Database reset")
	}

	ctx := context.Background()
	users := repositories.NewUserRepository(repositories.DB, nil)

	if _, err := users.GetByEmail(ctx, adminEmail); err == nil {
		log.Println("Admin user already exists")
		return
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		log.Fatalf("Failed to look up admin: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Name:         adminName,
		Role:         models.RoleSuperAdmin,
		Designation:  models.DesignationAdmin,
		TokenVersion: 1,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Printf("✅ Admin account %s created successfully!", adminEmail)
}
