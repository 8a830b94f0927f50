package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hradmin/employee-admin/config"
	"github.com/hradmin/employee-admin/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	// TranslateError lets the unique-index conflict on email surface as
	// gorm.ErrDuplicatedKey instead of a raw pg error string.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := DB.AutoMigrate(&models.Employee{}); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
}
