package stores

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/phrase_anagrammer/config"
)

func testStore(t *testing.T, s Store) {
	is := is.New(t)
	ctx := context.Background()
	key := SearchKey{Lexicon: "words", MinWordLength: 3, Phrase: "CATDOG"}

	_, err := s.Get(ctx, key)
	is.True(errors.Is(err, ErrNotFound))

	is.NoErr(s.Put(ctx, key, []string{"CATDOG", "CAT DOG", "GCAT DO"}))
	got, err := s.Get(ctx, key)
	is.NoErr(err)
	is.Equal(got, []string{"CATDOG", "CAT DOG", "GCAT DO"})

	// Same phrase, different minimum: a different search.
	other := key
	other.MinWordLength = 2
	_, err = s.Get(ctx, other)
	is.True(errors.Is(err, ErrNotFound))

	// Overwrite keeps a single row per key.
	is.NoErr(s.Put(ctx, key, []string{"CATDOG"}))
	got, err = s.Get(ctx, key)
	is.NoErr(err)
	is.Equal(got, []string{"CATDOG"})

	empty := SearchKey{Lexicon: "words", MinWordLength: 3, Phrase: "ZZZ"}
	is.NoErr(s.Put(ctx, empty, nil))
	got, err = s.Get(ctx, empty)
	is.NoErr(err)
	is.Equal(got, []string{})
}

func TestSQLiteStore(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "results.db")
	s, err := NewSQLiteStore(context.Background(), path, "")
	is.NoErr(err)
	defer s.Close()
	testStore(t, s)
}

func TestSQLiteStoreReopen(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "results.db")
	key := SearchKey{Lexicon: "words", MinWordLength: 3, Phrase: "DOG"}

	s, err := NewSQLiteStore(ctx, path, "")
	is.NoErr(err)
	is.NoErr(s.Put(ctx, key, []string{"DOG", "GOD"}))
	is.NoErr(s.Close())

	// Migrations have already run; opening again must not fail.
	s, err = NewSQLiteStore(ctx, path, "")
	is.NoErr(err)
	defer s.Close()
	got, err := s.Get(ctx, key)
	is.NoErr(err)
	is.Equal(got, []string{"DOG", "GOD"})
}

func TestPostgresStore(t *testing.T) {
	dburl := os.Getenv("TEST_DB_URL")
	if dburl == "" {
		t.Skip("TEST_DB_URL not set")
	}
	is := is.New(t)
	s, err := NewPostgresStore(context.Background(), dburl, "")
	is.NoErr(err)
	defer s.Close()
	_, err = s.pool.Exec(context.Background(), `TRUNCATE anagram_searches`)
	is.NoErr(err)
	testStore(t, s)
}

func TestOpen(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	s, err := Open(ctx, &config.Config{})
	is.NoErr(err)
	_, ok := s.(Nop)
	is.True(ok)
	_, err = s.Get(ctx, SearchKey{Phrase: "CAT"})
	is.True(errors.Is(err, ErrNotFound))

	s, err = Open(ctx, &config.Config{DBPath: filepath.Join(t.TempDir(), "r.db")})
	is.NoErr(err)
	defer s.Close()
	_, ok = s.(*SQLiteStore)
	is.True(ok)
}
