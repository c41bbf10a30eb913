package database

import (
	"fmt"
	"log"
	"os"

	"vestpay/config"
	"vestpay/models"
	"vestpay/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes the database connection for the dialect named
// by DB_DIALECT (postgres by default; mysql and sqlite also supported),
// runs migrations and seeds the settings record and admin account.
func ConnectDb() {
	db, err := openDialect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)   // Maximum open connections
	sqlDB.SetMaxIdleConns(5)    // Maximum idle connections
	sqlDB.SetConnMaxLifetime(0) // No timeout

	// Run database migrations
	runMigrations(db)

	// Settings singleton and admin account must exist before any other
	// operation runs.
	if err := SeedDefaults(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

func openDialect() (*gorm.DB, error) {
	switch config.AppConfig.DBDialect {
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			config.AppConfig.DBName,
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(config.AppConfig.DBName+".db"), &gorm.Config{})
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			config.AppConfig.DBName,
			os.Getenv("DB_PORT"),
		)
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Investment{},
		&models.Transaction{},
		&models.AppSettings{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// SeedDefaults guarantees exactly one settings record and exactly one
// seeded admin account before any other operation runs.
func SeedDefaults(db *gorm.DB) error {
	var settingsCount int64
	if err := db.Model(&models.AppSettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		settings := models.AppSettings{
			ReferralBonusPercentage: 5,
			WithdrawalFeePercentage: 0,
		}
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	}

	var adminCount int64
	if err := db.Model(&models.User{}).Where("role = ?", "ADMIN").Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword(
			[]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
		if err != nil {
			return err
		}
		admin := models.User{
			Username:     "admin",
			Email:        config.AppConfig.AdminEmail,
			Password:     string(hashed),
			Role:         "ADMIN",
			ReferralCode: utils.GenerateReferralCode(),
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("Seeded admin account: %s", admin.Email)
	}
	return nil
}
