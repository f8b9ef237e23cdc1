package database

import (
	"taxledger/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection opens the PostgreSQL pool used in production
func NewConnection(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), logger)
}

// Open connects through any gorm dialector and migrates the schema. A failed
// migration is logged and the connection still returned.
func Open(dialector gorm.Dialector, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		logger.Warn("failed to auto-migrate models", zap.Error(err))
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Business{},
		&model.TaxRate{},
		&model.Revenue{},
		&model.Expense{},
		&model.Payroll{},
		&model.TaxCalculation{},
		&model.TaxDeadline{},
		&model.AuditLog{},
	)
}
