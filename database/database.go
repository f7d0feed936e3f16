package database

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"construlab/config"
	"construlab/internal/domain/billing"
	"construlab/internal/domain/plans"
	"construlab/internal/domain/projects"
	"construlab/internal/domain/users"
)

var DB *gorm.DB

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},
		&projects.Project{},
	}
}

func InitDB() {
	db, err := Open(config.DB_URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = db
	log.Info("Connected and migrated successfully")
}

// Open connects to Postgres for postgres:// URLs (or key=value DSNs) and to a
// SQLite file otherwise, then migrates the schema.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty database url")
	}

	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var dialector gorm.Dialector
	if isPostgres(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
