package gormdb

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/foryous/reviews-api/config"
	"github.com/foryous/reviews-api/internal/domain/entity"
	"github.com/foryous/reviews-api/internal/domain/repository"
)

// Open connects to the configured store. TranslateError is on so unique-key
// violations surface as gorm.ErrDuplicatedKey on every driver.
func Open(cfg *config.Config, log *logrus.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.Env == "development" {
		level = gormlogger.Info
	}
	gcfg := &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             cfg.SlowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	}

	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.PostgresDSN())
	case "sqlite":
		dial = sqlite.Open(cfg.SQLiteDSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return gorm.Open(dial, gcfg)
}

// AutoMigrate ensures the schema for every persisted entity exists.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&entity.User{}, &entity.Post{}, &entity.Account{})
}

// translate maps gorm errors onto the repository error taxonomy so callers
// can distinguish conflict and not-found from everything else.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return repository.ErrConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	default:
		return err
	}
}
