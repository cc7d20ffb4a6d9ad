// Package stores keeps ranked anagram searches around so that a phrase only
// has to be searched once per lexicon.
package stores

import (
	"context"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"

	"github.com/domino14/phrase_anagrammer/config"
)

var ErrNotFound = errors.New("search not found")

//go:embed migrations
var migrationsFS embed.FS

// SearchKey identifies a stored search. Phrase is the normalized phrase.
type SearchKey struct {
	Lexicon       string
	MinWordLength int
	Phrase        string
}

// Store saves ranked anagrams. Get returns ErrNotFound on a miss.
type Store interface {
	Get(ctx context.Context, key SearchKey) ([]string, error)
	Put(ctx context.Context, key SearchKey, anagrams []string) error
	Close() error
}

// Open picks a store from the config: postgres if a db url is given, sqlite
// if a db path is given, and a store that never remembers anything otherwise.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch {
	case cfg.DBURL != "":
		return NewPostgresStore(ctx, cfg.DBURL, cfg.DBMigrationsPath)
	case cfg.DBPath != "":
		return NewSQLiteStore(ctx, cfg.DBPath, cfg.DBMigrationsPath)
	}
	log.Info().Msg("no-result-store-configured")
	return Nop{}, nil
}

// migrateUp brings the database at databaseURL up to date. Migrations come
// from sourceURL if given, otherwise from the embedded set in dialectDir.
func migrateUp(sourceURL, dialectDir, databaseURL string) error {
	var m *migrate.Migrate
	var err error
	if sourceURL != "" {
		m, err = migrate.New(sourceURL, databaseURL)
	} else {
		src, serr := iofs.New(migrationsFS, "migrations/"+dialectDir)
		if serr != nil {
			return serr
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, databaseURL)
	}
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("migrate-close")
		}
	}()
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err == nil {
		log.Info().Str("dialect", dialectDir).Msg("migrations-applied")
	}
	return err
}

// Nop is a Store that never finds anything.
type Nop struct{}

func (Nop) Get(context.Context, SearchKey) ([]string, error) {
	return nil, ErrNotFound
}

func (Nop) Put(context.Context, SearchKey, []string) error {
	return nil
}

func (Nop) Close() error {
	return nil
}
