// Package repo is the persistence layer for the reference schema, backed by
// GORM on SQLite (pure Go driver). The action handlers do not call into it
// yet: the simulated gateways fabricate their results. It exists so the
// database is migrated and the create/read operations are in place for the
// persistence collaborator the action layer will eventually delegate to.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/agrilink/agrifinance-backend/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if the parent directory does not exist (instead of the
	// sqlite "out of memory (14)" error on some platforms).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate applies the full reference schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.MarketPrice{},
		&domain.ProductListing{},
		&domain.ProductImage{},
		&domain.Transaction{},
		&domain.WeatherData{},
		&domain.Notification{},
		&domain.TransportService{},
		&domain.TransportBooking{},
		&domain.FinancialService{},
		&domain.FinancialApplication{},
		&domain.AIAssistantChat{},
	)
}
