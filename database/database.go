package database

import (
	"fmt"
	"time"

	config "github.com/edupulse/edupulse_server/configs"
	"github.com/edupulse/edupulse_server/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN assembles the Postgres connection string from the environment.
// DATABASE_URL wins when set.
func DSN() string {
	if url := config.Config("DATABASE_URL"); url != "" {
		return url
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.ConfigOr("DB_HOST", "localhost"),
		config.ConfigOr("DB_PORT", "5432"),
		config.Config("DB_USER"),
		config.Config("DB_PASS"),
		config.ConfigOr("DB_NAME", "edupulse"),
		config.ConfigOr("DB_SSLMODE", "disable"),
	)
}

// Connect opens the database and configures the connection pool.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the schema for every collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Material{},
		&models.Review{},
		&models.BookedSession{},
		&models.Note{},
	)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
