// Seeds the first admin account from ADMIN_EMAIL / ADMIN_PASSWORD. Safe to
// run repeatedly; an existing admin is left alone.
package main

import (
	"log"

	"vestra/internal/config"
	"vestra/internal/models"
	"vestra/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := config.MustGetEnv("ADMIN_EMAIL")
	adminPassword := config.MustGetEnv("ADMIN_PASSWORD")

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Printf("Failed to close database connection: %v", err)
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				log.Printf("Failed to close Redis connection: %v", err)
			}
		}
	}()

	var existing models.User
	if err := repositories.DB.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Role:         "admin",
		Status:       "active",
		TokenVersion: 1,
	}
	if err := repositories.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	// Admins get a balance row too so dashboards render.
	if err := repositories.DB.Create(&models.Balance{UserID: admin.ID}).Error; err != nil {
		log.Fatal("Failed to create admin balance:", err)
	}

	log.Println("Admin account created successfully")
}
