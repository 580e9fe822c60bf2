package initializers

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/XidanAbds29/huehouse-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Customer{},
		&models.Cart{},
		&models.Order{},
	)
	log.Println("Database synced successfully.")
	seedAdmin()
}

// seedAdmin creates the back-office account from ADMIN_EMAIL/ADMIN_PASSWORD
// when no admin user exists yet.
func seedAdmin() {
	if Cfg.AdminEmail == "" || Cfg.AdminPassword == "" {
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(Cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash admin password:", err)
		return
	}

	admin := models.User{
		Fullname: "Shop Admin",
		Email:    Cfg.AdminEmail,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if result := DB.Create(&admin); result.Error != nil {
		log.Println("Failed to seed admin account:", result.Error)
		return
	}
	log.Println("Seeded admin account:", Cfg.AdminEmail)
}
