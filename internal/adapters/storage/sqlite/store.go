// Package sqlite implementa los repositorios sobre un archivo SQLite local.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"barangay-animal-tracking/internal/adapters/storage/sqlite/migrations"
	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/domain/visits"
	"barangay-animal-tracking/internal/ports/auth"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store es el handle compartido por los repositorios SQLite.
type Store struct {
	db *sql.DB

	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// Open abre (o crea) la base en path y aplica las migraciones embebidas.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// un solo writer; evita SQLITE_BUSY al promover locks dentro de una tx
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Animals() animals.Repository { return &animalRepo{s: s} }
func (s *Store) Visits() visits.Repository { return &visitRepo{s: s} }
func (s *Store) Accounts() accounts.Repository { return &accountRepo{s: s} }
func (s *Store) Credentials() auth.CredentialRepository { return &credentialRepo{s: s} }

// tick devuelve un timestamp en millis estrictamente creciente para este store.
func (s *Store) tick() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := s.now().UTC().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return fromMillis(ms)
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return strings.Contains(err.Error(), column)
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") && strings.Contains(msg, column)
}
