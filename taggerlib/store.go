package taggerlib

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"goWordFreq/iolib"
	"goWordFreq/redislib"
)

// FileStore keeps the model in a gob file. The previous file is copied to
// Path+".backup" before being replaced.
type FileStore struct {
	Path string
}

func (s FileStore) Load() ([]byte, error) {
	b, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (s FileStore) Save(data []byte) error {
	if iolib.FileExists(s.Path) {
		if err := iolib.CopyFileContents(s.Path, s.Path+".backup"); err != nil {
			return fmt.Errorf("backing up %s: %w", s.Path, err)
		}
	}
	return iolib.Bytes2file(data, s.Path)
}

const sqliteSchema = `CREATE TABLE IF NOT EXISTS tagger_models (
	name       TEXT PRIMARY KEY,
	model      BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SQLiteStore keeps named models in a sqlite database
type SQLiteStore struct {
	db   *sql.DB
	name string
}

// OpenSQLiteStore opens (creating if needed) the database at path. Use
// ":memory:" for a throwaway store.
func OpenSQLiteStore(path, name string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection, so ":memory:" keeps a single database
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db, name: name}, nil
}

func (s *SQLiteStore) Load() ([]byte, error) {
	var b []byte
	err := s.db.QueryRow(`SELECT model FROM tagger_models WHERE name = ?`, s.name).Scan(&b)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (s *SQLiteStore) Save(data []byte) error {
	_, err := s.db.Exec(`INSERT INTO tagger_models (name, model) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET model = excluded.model, updated_at = CURRENT_TIMESTAMP`,
		s.name, data)
	return err
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RedisStore keeps the model under one redis key
type RedisStore struct {
	Client *redislib.Client
	Key    string
}

func (s RedisStore) Load() ([]byte, error) {
	b, err := s.Client.Get(s.Key)
	if errors.Is(err, redislib.ErrNotFound) {
		return nil, ErrCacheMiss
	}
	return b, err
}

func (s RedisStore) Save(data []byte) error {
	return s.Client.Set(s.Key, data)
}
