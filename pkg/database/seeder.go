package database

import (
	"log"

	"github.com/Shrijana18/StockPilot-v1-sub002/config"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/utils"

	"gorm.io/gorm"
)

func SeedRolesAndAdmin() {
	// Seed Roles
	roles := []string{"admin", "retailer"}
	for _, r := range roles {
		var role models.Role
		if err := DB.FirstOrCreate(&role, models.Role{Name: r}).Error; err != nil {
			log.Printf("Failed to seed role %s: %v", r, err)
		}
	}

	// Seed Admin User
	var adminRole models.Role
	DB.Where("name = ?", "admin").First(&adminRole)

	var adminUser models.User
	if err := DB.Where("login_id = ?", config.AppConfig.Defaults.AdminLoginID).First(&adminUser).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashedPassword, _ := utils.HashPassword(config.AppConfig.Defaults.AdminPassword)
			admin := models.User{
				LoginID:      config.AppConfig.Defaults.AdminLoginID,
				BusinessName: "Platform Admin",
				PasswordHash: hashedPassword,
				RoleID:       adminRole.ID,
				IsActive:     true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("Failed to seed admin user: %v", err)
			} else {
				log.Println("Admin user seeded successfully.")
			}
		}
	}
}
