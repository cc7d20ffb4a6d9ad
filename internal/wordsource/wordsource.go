// Package wordsource reads raw dictionary lines from wherever they live: a
// plain word list, any reader, or a lexicon database.
package wordsource

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	// sqlite3 driver for lexicon databases.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Source yields dictionary lines, one word per line. Lines are returned as
// they are; normalizing them is the lexicon's job.
type Source interface {
	Name() string
	Words(ctx context.Context) ([]string, error)
}

// ForPath picks a source by file extension: .db files are lexicon databases,
// everything else is a word list.
func ForPath(path string) Source {
	if strings.EqualFold(filepath.Ext(path), ".db") {
		return &SQLite{Path: path}
	}
	return &File{Path: path}
}

// File is a word list on disk.
type File struct {
	Path string
}

func (f *File) Name() string {
	return f.Path
}

func (f *File) Words(ctx context.Context) ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer file.Close()
	return readLines(ctx, file)
}

type readerSource struct {
	name string
	r    io.Reader
}

// Reader wraps r as a Source. It can only be read once.
func Reader(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (rs *readerSource) Name() string {
	return rs.name
}

func (rs *readerSource) Words(ctx context.Context) ([]string, error) {
	return readLines(ctx, rs.r)
}

func readLines(ctx context.Context, r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if len(lines)%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return lines, nil
}

// SQLite reads the words table of a lexicon database.
type SQLite struct {
	Path string
}

const wordsQuery = `SELECT word FROM words`

func (s *SQLite) Name() string {
	return s.Path
}

func (s *SQLite) Words(ctx context.Context) ([]string, error) {
	// sql.Open happily creates a new empty database; we want to fail instead.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("opening lexicon database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening lexicon database: %w", err)
	}
	defer db.Close()

	log.Debug().Str("path", s.Path).Str("query", wordsQuery).Msg("lexicon-db-query")
	rows, err := db.QueryContext(ctx, wordsQuery)
	if err != nil {
		return nil, fmt.Errorf("querying lexicon database: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
