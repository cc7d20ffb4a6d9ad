// Package dbmaker creates SQLite lexicon databases from word lists, so the
// anagram server can load a lexicon without reparsing text.
package dbmaker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/phrase_anagrammer/internal/lexicon"
	"github.com/domino14/phrase_anagrammer/internal/wordsource"
)

var ErrDatabaseExists = errors.New("lexicon database already exists")

const schema = `
CREATE TABLE words (word varchar(50) NOT NULL, alphagram varchar(50) NOT NULL);
CREATE UNIQUE INDEX word_index ON words(word);
CREATE INDEX alphagram_index ON words(alphagram);
CREATE TABLE lexicon_info (name varchar(50) NOT NULL, num_words integer NOT NULL);
`

// MakeAlphagram sorts the letters of word.
func MakeAlphagram(word string) string {
	runes := []rune(word)
	slices.Sort(runes)
	return string(runes)
}

// DBPath is where CreateLexiconDatabase writes the lexicon called name.
func DBPath(outputDir, name string) string {
	return filepath.Join(outputDir, name+".db")
}

// CreateLexiconDatabase writes every distinct normalized word of src into
// <outputDir>/<name>.db and returns how many it wrote. An existing database
// is only replaced if overwrite is set, and only once the new one is complete.
func CreateLexiconDatabase(ctx context.Context, name string, src wordsource.Source,
	outputDir string, overwrite bool) (int, error) {

	dbPath := DBPath(outputDir, name)
	if _, err := os.Stat(dbPath); err == nil && !overwrite {
		return 0, fmt.Errorf("%w: %s", ErrDatabaseExists, dbPath)
	}

	lines, err := src.Words(ctx)
	if err != nil {
		return 0, err
	}
	words := lo.Uniq(lo.Filter(lo.Map(lines, func(l string, _ int) string {
		return lexicon.Normalize(l)
	}), func(w string, _ int) bool {
		return w != ""
	}))

	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return 0, err
	}
	tmp, err := os.CreateTemp(outputDir, name+"-*.db.tmp")
	if err != nil {
		return 0, err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := writeWords(ctx, tmpPath, name, words); err != nil {
		return 0, err
	}
	if err := os.Rename(tmpPath, dbPath); err != nil {
		return 0, err
	}
	log.Info().Str("lexicon", name).Str("path", dbPath).Int("words", len(words)).
		Msg("lexicon-db-created")
	return len(words), nil
}

func writeWords(ctx context.Context, dbPath, name string, words []string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (word, alphagram) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w, MakeAlphagram(w)); err != nil {
			return fmt.Errorf("inserting %s: %w", w, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO lexicon_info (name, num_words) VALUES (?, ?)`,
		name, len(words)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	return db.Close()
}

// WordListNames splits a comma-separated list of lexicon names, dropping
// blanks.
func WordListNames(list string) []string {
	return lo.Compact(lo.Map(strings.Split(list, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}
