package migration

import (
	"errors"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/transaction-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/transaction-ledger/internal/infrastructure/adapter/model"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.currentVersion()
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	if err := m.db.AutoMigrate(&model.Transaction{}); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.recordVersion(CurrentSchemaVersion); err != nil {
		return err
	}

	m.logger.Info("Database migrations completed", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// currentVersion returns the most recently applied schema version
func (m *MigrationManager) currentVersion() (string, error) {
	var version model.MigrationVersion
	result := m.db.Order("applied_at DESC").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}
	return version.Version, nil
}

// recordVersion stores the applied schema version
func (m *MigrationManager) recordVersion(version string) error {
	return m.db.Create(&model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
	}).Error
}

// createIndexes creates the access paths the engine's queries rely on.
// The composite (client_id, timestamp) index backs both the plain balance sum
// and the point-in-time cutoff variant.
func (m *MigrationManager) createIndexes() error {
	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_client_timestamp ON transactions (client_id, timestamp)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_revert_transaction_id ON transactions (revert_transaction_id) WHERE revert_transaction_id IS NOT NULL",
	}

	for _, stmt := range statements {
		if err := m.db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
