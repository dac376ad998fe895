package session

import (
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"

	"avantika_admin/internal/domain"
)

// TokenKey is the fixed key the login flow writes the bearer token under.
const TokenKey = "adminToken"

// Store is a small sqlite-backed key→string store standing in for the
// browser's localStorage. This module only reads it; writes come from the
// external login flow (Put exists for that flow and for tests).
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Get(key string) (string, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// Token returns the stored admin bearer token. A JWT whose exp claim is in
// the past is rejected up front so a dead session surfaces before any
// network call. Opaque (non-JWT) tokens pass through untouched.
func (s *Store) Token() (string, error) {
	v, ok, err := s.Get(TokenKey)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return "", domain.ErrNoToken
	}
	if expired(v) {
		return "", domain.ErrTokenExpired
	}
	return v, nil
}

func expired(token string) bool {
	claims := jwt.MapClaims{}
	// Signature verification belongs to the backend; we only look at exp.
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
