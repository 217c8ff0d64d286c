package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// record is the single table backing every collection: one row per stored
// record, keyed by (collection, id), with the JSON-encoded record as value.
// No secondary indexes.
type record struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:64"`
	Value      []byte
	UpdatedAt  time.Time
}

func (record) TableName() string { return "records" }

// SQLite is the durable KV implementation: a single local database file, no
// network I/O. It satisfies Transactional.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the database file at path and syncs
// the schema.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %s: %w", path, err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("migrate records table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) List(ctx context.Context, collection string) ([][]byte, error) {
	var rows []record
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	values := make([][]byte, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Value)
	}
	return values, nil
}

func (s *SQLite) Get(ctx context.Context, collection, id string) ([]byte, error) {
	var r record
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Take(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return r.Value, nil
}

func (s *SQLite) Put(ctx context.Context, collection, id string, value []byte) error {
	if id == "" {
		return ErrEmptyID
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record{
			Collection: collection,
			ID:         id,
			Value:      value,
			UpdatedAt:  time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&record{}).Error
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context, collection string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Delete(&record{}).Error
	if err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	return nil
}

// RunInTransaction runs fn against a KV view of one database transaction.
// Any error from fn rolls the whole transaction back.
func (s *SQLite) RunInTransaction(ctx context.Context, fn func(tx KV) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&SQLite{db: tx})
	})
}
