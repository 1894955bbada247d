package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"github.com/sweetline/mithas-api/internal/config"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities. The composite
// unique indexes on attendances and salaries are the enforcement point for
// the one-row-per-day and one-row-per-period invariants.
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Employee{},
		&entity.Attendance{},
		&entity.Advance{},
		&entity.Salary{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.SimpleSale{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedAdminUser creates the administrative account from the environment if
// it does not already exist
func SeedAdminUser(db *gorm.DB) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", adminEmail)
		return nil
	}

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if adminName == "" {
		adminName = "Admin"
	}

	admin := entity.User{
		Name:     adminName,
		Email:    adminEmail,
		Password: hashed,
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", adminEmail)
	return nil
}
