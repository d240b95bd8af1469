package database

import (
	"errors"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/alfon96/askenzo-api/models"
)

// Connect opens the Postgres handle and migrates the explicit entity list
// from models.Schema. TranslateError turns driver unique-violations into
// gorm.ErrDuplicatedKey so the service layer can classify them.
func Connect(connStr string) (*gorm.DB, error) {
	if connStr == "" {
		return nil, errors.New("DB_URL is not set")
	}
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// The discovery coordinate is a geography column.
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(models.Schema()...); err != nil {
		return nil, err
	}
	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, err
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
