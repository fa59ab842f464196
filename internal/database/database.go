package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/config"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the pool. TranslateError lets repositories recognise
// unique violations as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) error {
	db, err := Open(postgres.Open(cfg.DSN()))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	DB = db
	slog.Info("database connected", "host", cfg.DBHost, "name", cfg.DBName)
	return nil
}

// Open applies the GORM settings shared by the server and tests.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PartnerProfile{},
		&models.Inquiry{},
		&models.LeadAssignment{},
		&models.PortfolioItem{},
		&models.SystemLog{},
	)
}

func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
