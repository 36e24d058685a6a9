package db

import (
	"fmt"
	"os"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pemmasanikrishna/remo/internal/models"
)

// Connect opens the PostgreSQL database with a small retry loop so the
// app survives the store starting up alongside it.
func Connect(dsn string) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	return db, nil
}

// Migrate applies the GORM auto-migrations for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Permission{},
		&models.Group{},
		&models.User{},
		&models.FunctionalArea{},
		&models.UserProfile{},
		&models.UserStatus{},
		&models.FeaturedRep{},
	)
}

// RunSQLMigrations applies the explicit SQL migrations under migrations/
// via golang-migrate. Used instead of AutoMigrate when MIGRATIONS is set,
// so production schema changes are reviewable files.
func RunSQLMigrations(databaseURL string) error {
	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
