package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore runs migrations against dburl and opens a pool to it.
func NewPostgresStore(ctx context.Context, dburl, migrationsPath string) (*PostgresStore, error) {
	if err := migrateUp(migrationsPath, "postgres", dburl); err != nil {
		return nil, fmt.Errorf("migrating postgres store: %w", err)
	}
	pool, err := pgxpool.New(ctx, dburl)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Get(ctx context.Context, key SearchKey) ([]string, error) {
	anagrams := []string{}
	err := s.pool.QueryRow(ctx, `
		SELECT anagrams FROM anagram_searches
		WHERE lexicon_name = $1 AND min_word_length = $2 AND phrase = $3`,
		key.Lexicon, key.MinWordLength, key.Phrase).Scan(&anagrams)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return anagrams, nil
}

func (s *PostgresStore) Put(ctx context.Context, key SearchKey, anagrams []string) error {
	if anagrams == nil {
		anagrams = []string{}
	}
	bts, err := json.Marshal(anagrams)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO anagram_searches (lexicon_name, min_word_length, phrase, num_anagrams, anagrams)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (lexicon_name, min_word_length, phrase)
		DO UPDATE SET num_anagrams = EXCLUDED.num_anagrams, anagrams = EXCLUDED.anagrams`,
		key.Lexicon, key.MinWordLength, key.Phrase, len(anagrams), string(bts))
	return err
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
