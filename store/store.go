// Package store is the persistence layer: a thin GORM wrapper over
// SQLite. Rows mirror the entities in models; cross-entity sweeps are
// composed by the services inside WithTx units of work.
// File: store/store.go
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus-teams/logger"
	"campus-teams/models"
)

// Store wraps a gorm handle. All data access goes through its methods.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite file at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		logger.Error.Printf("store: failed to open database at %s: %v", path, err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	err := s.db.AutoMigrate(
		&models.Student{},
		&models.Team{},
		&models.JoinRequest{},
		&models.Interest{},
		&models.Notification{},
		&models.Event{},
		&models.Competition{},
		&models.LeaveApplication{},
		&models.Message{},
	)
	if err != nil {
		logger.Error.Printf("store: failed to migrate schema: %v", err)
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// WithTx runs fn inside a single database transaction. The callback
// receives a Store bound to the transaction; any error rolls back every
// write made through it.
func (s *Store) WithTx(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// IsNotFound reports whether err stems from a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
