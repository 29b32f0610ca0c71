// Package session holds the staff bearer token for the platform backend.
// The token is the sole authorization artifact: the backend issues it at
// login and invalidates it server-side; we only store, send, and clear it.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// tokenKey is the fixed storage key the token lives under.
const tokenKey = "token"

// record is the local key/value row backing the store.
type record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (record) TableName() string { return "session_store" }

// Store persists a single bearer token across restarts and hands it to the
// HTTP client. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	token string
	db    *gorm.DB
}

// Open loads the store from the given sqlite file, creating it if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}

	s := &Store{db: db}

	var rec record
	err = db.First(&rec, "key = ?", tokenKey).Error
	switch {
	case err == nil:
		s.token = rec.Value
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fresh store, no session yet
	default:
		return nil, err
	}
	return s, nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Present reports whether a session exists.
func (s *Store) Present() bool { return s.Token() != "" }

// Set stores a new token and persists it.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.db.Save(&record{Key: tokenKey, Value: token}).Error
}

// Clear drops the session. Called on logout and on any 401/403 from the
// backend.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return s.db.Delete(&record{}, "key = ?", tokenKey).Error
}
