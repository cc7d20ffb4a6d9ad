package dbmaker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/phrase_anagrammer/internal/wordsource"
)

func TestAlphagram(t *testing.T) {
	is := is.New(t)
	is.Equal(MakeAlphagram("CATDOG"), "ACDGOT")
	is.Equal(MakeAlphagram("ÑANDU"), "ADNUÑ")
	is.Equal(MakeAlphagram(""), "")
}

func TestCreateLexiconDatabase(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dir := t.TempDir()
	src := wordsource.Reader("inline", strings.NewReader("cat\nDog\n\ncat\ncat dog\n"))

	n, err := CreateLexiconDatabase(ctx, "TINY", src, dir, false)
	is.NoErr(err)
	is.Equal(n, 3)

	words, err := wordsource.ForPath(filepath.Join(dir, "TINY.db")).Words(ctx)
	is.NoErr(err)
	is.Equal(len(words), 3)
	is.True(strings.Contains(strings.Join(words, ","), "CATDOG"))
}

func TestCreateLexiconDatabaseExists(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	_, err := CreateLexiconDatabase(ctx, "TINY", wordsource.Reader("a", strings.NewReader("cat\n")), dir, false)
	is.NoErr(err)

	_, err = CreateLexiconDatabase(ctx, "TINY", wordsource.Reader("b", strings.NewReader("dog\ngod\n")), dir, false)
	is.True(errors.Is(err, ErrDatabaseExists))

	n, err := CreateLexiconDatabase(ctx, "TINY", wordsource.Reader("b", strings.NewReader("dog\ngod\n")), dir, true)
	is.NoErr(err)
	is.Equal(n, 2)
	words, err := wordsource.ForPath(DBPath(dir, "TINY")).Words(ctx)
	is.NoErr(err)
	is.Equal(len(words), 2)
}

func TestFailedOverwriteKeepsDatabase(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	_, err := CreateLexiconDatabase(ctx, "TINY", wordsource.Reader("a", strings.NewReader("cat\ndog\n")), dir, false)
	is.NoErr(err)

	missing := &wordsource.File{Path: filepath.Join(dir, "missing.txt")}
	_, err = CreateLexiconDatabase(ctx, "TINY", missing, dir, true)
	is.True(errors.Is(err, os.ErrNotExist))

	words, err := wordsource.ForPath(DBPath(dir, "TINY")).Words(ctx)
	is.NoErr(err)
	is.Equal(len(words), 2)

	entries, err := os.ReadDir(dir)
	is.NoErr(err)
	is.Equal(len(entries), 1) // no temp files left behind
}

func TestWordListNames(t *testing.T) {
	is := is.New(t)
	is.Equal(WordListNames("CSW24, NWL23,,"), []string{"CSW24", "NWL23"})
	is.Equal(len(WordListNames("")), 0)
}
