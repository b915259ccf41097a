package repository

import (
	"log/slog"
	"time"

	slogGorm "github.com/orandin/slog-gorm"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Tamirosss/app-server/internal/model"
)

// NewDB opens the datastore and runs migrations. A non-empty
// databaseURL selects postgres; otherwise the service runs against a
// local sqlite file at fallbackPath.
func NewDB(databaseURL, fallbackPath string, appLogger *slog.Logger) (*gorm.DB, error) {
	gormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithSlowThreshold(500*time.Millisecond),
	)

	var dialector gorm.Dialector
	if databaseURL != "" {
		dialector = postgres.Open(databaseURL)
	} else {
		appLogger.Warn("No database URL configured, using local sqlite file", slog.String("path", fallbackPath))
		dialector = sqlite.Open(fallbackPath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		appLogger.Error("Failed to open database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		appLogger.Error("Error migrating schema", slog.Any("error", err))
		sqlDB.Close()
		return nil, err
	}

	appLogger.Info("Database connection established")
	return db, nil
}

// Migrate creates or updates the schema. Kept separate so tests can run
// it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.WorkoutPlan{},
		&model.Exercise{},
		&model.WorkoutProgress{},
	)
}
