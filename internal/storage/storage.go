// Package storage persists the finance document.
//
// The document occupies a single slot in a key-value table, mirroring the
// localStorage slot of the web app: every save is a replace-whole-document
// write. A loaded document is cached in memory; all mutations go through
// Update so that load, mutate and save happen under one lock and an import
// can never be clobbered by a stale in-flight reference.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LongVariable/Ziskup/internal/models"
)

// documentKey is the slot the document lives in. The value matches the
// localStorage key of the web app.
const documentKey = "finance_v2"

var ErrStorage = errors.New("an error occurred on the server during your request")

// Record is one row of the key-value table.
type Record struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// Store holds the database connection and the document cache. A single
// mutex guards both, load on a cache miss writes the cache so readers
// lock exclusively too.
type Store struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache *models.Document
}

// Open connects to the SQLite database, migrates the schema and returns
// the store.
func Open(dsn string) (*Store, error) {
	config := &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Record{})
	if err != nil {
		return nil, fmt.Errorf("error during DB migration: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Health reports whether the database is reachable.
func (s *Store) Health() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return driverError(err)
	}

	return driverError(sqlDB.Ping())
}

// View runs fn with the current document under the lock. fn must not
// mutate the document or retain a reference to it.
func (s *Store) View(fn func(doc *models.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.load())
}

// Update runs fn with the current document and persists the result, all
// under the write lock. When fn returns an error the document is not saved.
func (s *Store) Update(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	if err := fn(doc); err != nil {
		return err
	}

	return s.save(doc)
}

// Replace makes doc the new canonical document and persists it. Used by
// import, which swaps the document wholesale.
func (s *Store) Replace(doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(doc)
}

// Invalidate drops the cache so that the next access re-reads storage.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = nil
}

// Export returns the current document pretty-printed.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return json.MarshalIndent(s.load(), "", "  ")
}

// load returns the cached document, reading and repairing it from storage
// first when the cache is empty. Storage corruption or absence is absorbed
// into an empty document, load never fails. The caller must hold the lock.
func (s *Store) load() *models.Document {
	if s.cache != nil {
		return s.cache
	}

	var record Record
	err := s.db.First(&record, "key = ?", documentKey).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(driverError(err)).Msg("document could not be read, starting empty")
	}

	s.cache = models.ParseDocument(record.Value)
	return s.cache
}

// save replaces the stored document and the cache. The caller must hold the
// write lock.
func (s *Store) save(doc *models.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("document could not be serialized: %w", err)
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&Record{Key: documentKey, Value: raw, UpdatedAt: time.Now().In(time.UTC)}).Error
	if err != nil {
		return driverError(err)
	}

	s.cache = doc
	return nil
}

// driverError collapses SQLite driver errors into a general storage error.
// The driver message is logged for the server admin, users get the
// general one.
func driverError(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *go_sqlite.Error
	if errors.As(err, &sqliteErr) || err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrStorage
	}

	return err
}
