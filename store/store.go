// Package store is the persistence layer. All reads and writes go
// through a Store; multi-step mutations run inside Tx so a partial
// failure rolls back every write.
package store

import (
	"errors"

	"github.com/eatupnow/eatupnow-api/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migration and health checks.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Tx runs fn inside a database transaction. The Store passed to fn is
// bound to that transaction.
func (s *Store) Tx(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// AutoMigrate creates or updates the schema for all models.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.DeliveryAgent{},
	)
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
