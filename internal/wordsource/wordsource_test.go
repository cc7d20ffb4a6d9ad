package wordsource

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestReader(t *testing.T) {
	is := is.New(t)
	src := Reader("inline", strings.NewReader("cat\n  Dog \n\nCATDOG\n"))
	is.Equal(src.Name(), "inline")
	words, err := src.Words(context.Background())
	is.NoErr(err)
	is.Equal(words, []string{"cat", "  Dog ", "", "CATDOG"})
}

func TestFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "words.txt")
	is.NoErr(os.WriteFile(path, []byte("cat\ndog\n"), 0o644))

	src := ForPath(path)
	_, ok := src.(*File)
	is.True(ok)
	words, err := src.Words(context.Background())
	is.NoErr(err)
	is.Equal(words, []string{"cat", "dog"})
}

func TestFileMissing(t *testing.T) {
	is := is.New(t)
	src := &File{Path: filepath.Join(t.TempDir(), "nope.txt")}
	_, err := src.Words(context.Background())
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestSQLite(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "TEST.db")
	db, err := sql.Open("sqlite3", path)
	is.NoErr(err)
	_, err = db.Exec(`CREATE TABLE words (word varchar(20), alphagram varchar(20))`)
	is.NoErr(err)
	for _, w := range []string{"CAT", "DOG", "CATDOG"} {
		_, err = db.Exec(`INSERT INTO words (word, alphagram) VALUES (?, ?)`, w, "")
		is.NoErr(err)
	}
	is.NoErr(db.Close())

	src := ForPath(path)
	_, ok := src.(*SQLite)
	is.True(ok)
	words, err := src.Words(context.Background())
	is.NoErr(err)
	is.Equal(len(words), 3)
	is.True(strings.Contains(strings.Join(words, ","), "CATDOG"))
}

func TestSQLiteMissing(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "missing.db")
	_, err := ForPath(path).Words(context.Background())
	is.True(errors.Is(err, os.ErrNotExist))
	_, statErr := os.Stat(path)
	is.True(os.IsNotExist(statErr)) // no empty db left behind
}

func TestCancelledContext(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Reader("x", strings.NewReader("cat\n")).Words(ctx)
	is.True(errors.Is(err, context.Canceled))
}
