package db

import (
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loanflow/internal/domain/approval"
	"loanflow/internal/domain/customer"
	"loanflow/internal/domain/disbursement"
	"loanflow/internal/domain/loan"
	"loanflow/internal/domain/plafond"
	"loanflow/internal/domain/review"
)

// Config returns the gorm settings every session uses. TranslateError lets
// repositories detect unique-index violations as gorm.ErrDuplicatedKey.
func Config(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:               logger.Default.LogMode(level),
		TranslateError:       true,
		DisableAutomaticPing: true,
	}
}

// ParseLogLevel maps LOG_LEVEL-style strings onto gorm's SQL log levels.
func ParseLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logger.Info
	case "warn":
		return logger.Warn
	case "error":
		return logger.Error
	case "silent":
		return logger.Silent
	}
	return logger.Warn
}

func OpenGorm(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	return openGorm(mysql.Open(dsn), Config(level))
}

// OpenGormWithDialector opens a session on any dialector (tests pass sqlmock or sqlite).
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	return openGorm(dial, Config(logger.Silent))
}

func openGorm(dial gorm.Dialector, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	slog.Info("gorm: connected", "dialect", dial.Name())
	return db, nil
}

// Models lists every table the workflow engine reads or writes.
func Models() []any {
	return []any{
		&customer.Customer{},
		&plafond.Plafond{},
		&loan.Loan{},
		&review.Review{},
		&approval.Approval{},
		&disbursement.Disbursement{},
	}
}

// AutoMigrate creates missing tables and indexes. It is not a migration system.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
