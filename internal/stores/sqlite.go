package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	// sqlite3 driver is used by this store.
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the sqlite file at path and runs
// migrations on it.
func NewSQLiteStore(ctx context.Context, path, migrationsPath string) (*SQLiteStore, error) {
	if err := migrateUp(migrationsPath, "sqlite", "sqlite3://"+path); err != nil {
		return nil, fmt.Errorf("migrating sqlite store: %w", err)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key SearchKey) ([]string, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `
		SELECT anagrams FROM anagram_searches
		WHERE lexicon_name = ? AND min_word_length = ? AND phrase = ?`,
		key.Lexicon, key.MinWordLength, key.Phrase).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	anagrams := []string{}
	if err := json.Unmarshal([]byte(raw), &anagrams); err != nil {
		return nil, err
	}
	return anagrams, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key SearchKey, anagrams []string) error {
	if anagrams == nil {
		anagrams = []string{}
	}
	bts, err := json.Marshal(anagrams)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO anagram_searches (lexicon_name, min_word_length, phrase, num_anagrams, anagrams)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (lexicon_name, min_word_length, phrase)
		DO UPDATE SET num_anagrams = excluded.num_anagrams, anagrams = excluded.anagrams`,
		key.Lexicon, key.MinWordLength, key.Phrase, len(anagrams), string(bts))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
