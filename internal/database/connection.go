// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bsfdc/film-portal-backend/internal/config"
	"github.com/bsfdc/film-portal-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.District{},
		&models.Department{},
		&models.NOCApplication{},
		&models.ShootingLocation{},
		&models.ArtistProfile{},
		&models.ProducerProfile{},
		&models.VendorProfile{},
		&models.Tender{},
		&models.Notice{},
		&models.AuditLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_role_status ON users(role, status)",
		"CREATE INDEX IF NOT EXISTS idx_users_district ON users(district_id)",

		// NOC application indexes
		"CREATE INDEX IF NOT EXISTS idx_noc_applications_applicant ON noc_applications(applicant_id)",
		"CREATE INDEX IF NOT EXISTS idx_noc_applications_status ON noc_applications(status)",
		"CREATE INDEX IF NOT EXISTS idx_noc_applications_created_at ON noc_applications(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_noc_forwarded_districts_district ON noc_forwarded_districts(district_id)",
		"CREATE INDEX IF NOT EXISTS idx_shooting_locations_application ON shooting_locations(application_id)",

		// Registration indexes
		"CREATE INDEX IF NOT EXISTS idx_artist_profiles_status ON artist_profiles(status)",
		"CREATE INDEX IF NOT EXISTS idx_producer_profiles_status ON producer_profiles(status)",
		"CREATE INDEX IF NOT EXISTS idx_vendor_profiles_status ON vendor_profiles(status)",

		// Tender and notice indexes
		"CREATE INDEX IF NOT EXISTS idx_tenders_status_closing ON tenders(status, closing_date)",
		"CREATE INDEX IF NOT EXISTS idx_notices_published ON notices(published, created_at DESC)",

		// Audit indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_user_action ON audit_logs(user_id, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	if err := seedDistricts(db); err != nil {
		return err
	}

	if err := seedDepartments(db); err != nil {
		return err
	}

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Name:   "Portal Administrator",
			Email:  "admin@filmcell.bihar.gov.in",
			Role:   models.UserRoleAdmin,
			Status: models.UserStatusActive,
		}

		if err := admin.SetPassword("ChangeMe123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	log.Println("Initial data seeding completed")
	return nil
}

func seedDistricts(db *gorm.DB) error {
	var count int64
	db.Model(&models.District{}).Count(&count)
	if count > 0 {
		return nil
	}

	names := map[string]string{
		"ARA": "Araria", "ARW": "Arwal", "AUR": "Aurangabad", "BAN": "Banka",
		"BEG": "Begusarai", "BHA": "Bhagalpur", "BHO": "Bhojpur", "BUX": "Buxar",
		"DAR": "Darbhanga", "ECH": "East Champaran", "GAY": "Gaya", "GOP": "Gopalganj",
		"JAM": "Jamui", "JEH": "Jehanabad", "KAI": "Kaimur", "KAT": "Katihar",
		"KHA": "Khagaria", "KIS": "Kishanganj", "LAK": "Lakhisarai", "MDP": "Madhepura",
		"MDB": "Madhubani", "MUN": "Munger", "MUZ": "Muzaffarpur", "NAL": "Nalanda",
		"NAW": "Nawada", "PAT": "Patna", "PUR": "Purnia", "ROH": "Rohtas",
		"SAH": "Saharsa", "SAM": "Samastipur", "SAR": "Saran", "SHE": "Sheikhpura",
		"SHO": "Sheohar", "SIT": "Sitamarhi", "SIW": "Siwan", "SUP": "Supaul",
		"VAI": "Vaishali", "WCH": "West Champaran",
	}

	for code, name := range names {
		district := models.District{Name: name, Code: code}
		if err := db.Create(&district).Error; err != nil {
			return fmt.Errorf("failed to seed district %s: %w", name, err)
		}
	}

	log.Printf("Seeded %d districts", len(names))
	return nil
}

func seedDepartments(db *gorm.DB) error {
	var count int64
	db.Model(&models.Department{}).Count(&count)
	if count > 0 {
		return nil
	}

	names := map[string]string{
		"HOME": "Home Department",
		"POL":  "Police Department",
		"FOR":  "Environment, Forest and Climate Change Department",
		"TOUR": "Tourism Department",
		"TRAN": "Transport Department",
		"UDH":  "Urban Development and Housing Department",
		"ACY":  "Art, Culture and Youth Department",
		"WRD":  "Water Resources Department",
	}

	for code, name := range names {
		department := models.Department{Name: name, Code: code}
		if err := db.Create(&department).Error; err != nil {
			return fmt.Errorf("failed to seed department %s: %w", name, err)
		}
	}

	log.Printf("Seeded %d departments", len(names))
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
