package anagramserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/phrase_anagrammer/internal/lexicon"
	"github.com/domino14/phrase_anagrammer/internal/wordsource"
)

var (
	ErrBadLexiconName  = errors.New("bad lexicon name")
	ErrLexiconNotFound = errors.New("lexicon not found")
)

var lexiconNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// lexiconCache loads each lexicon the first time it is asked for and keeps it.
// Lexica are read-only once loaded, so handing the same one to concurrent
// searches is fine. Loads lock only their own entry.
type lexiconCache struct {
	sync.Mutex
	path          string
	minWordLength int
	entries       map[string]*cacheEntry
}

type cacheEntry struct {
	sync.Mutex
	lex *lexicon.Lexicon
}

func newLexiconCache(path string, minWordLength int) *lexiconCache {
	return &lexiconCache{
		path:          path,
		minWordLength: minWordLength,
		entries:       make(map[string]*cacheEntry),
	}
}

func (c *lexiconCache) entry(name string) *cacheEntry {
	c.Lock()
	defer c.Unlock()
	e, ok := c.entries[name]
	if !ok {
		e = &cacheEntry{}
		c.entries[name] = e
	}
	return e
}

func (c *lexiconCache) add(lex *lexicon.Lexicon) {
	e := c.entry(lex.Name)
	e.Lock()
	defer e.Unlock()
	e.lex = lex
}

func (c *lexiconCache) get(ctx context.Context, name string) (*lexicon.Lexicon, error) {
	if !lexiconNameRe.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrBadLexiconName, name)
	}
	e := c.entry(name)
	e.Lock()
	defer e.Unlock()
	if e.lex != nil {
		log.Debug().Str("lexicon", name).Msg("getting lexicon from cache")
		return e.lex, nil
	}
	lex, err := c.load(ctx, name)
	if err != nil {
		return nil, err
	}
	e.lex = lex
	return lex, nil
}

// sourceFor looks for <path>/<name>.txt, then <path>/db/<name>.db.
func (c *lexiconCache) sourceFor(name string) (wordsource.Source, error) {
	candidates := []string{
		filepath.Join(c.path, name+".txt"),
		filepath.Join(c.path, "db", name+".db"),
	}
	idx := slices.IndexFunc(candidates, func(p string) bool {
		_, err := os.Stat(p)
		return err == nil
	})
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrLexiconNotFound, name)
	}
	return wordsource.ForPath(candidates[idx]), nil
}

func (c *lexiconCache) load(ctx context.Context, name string) (*lexicon.Lexicon, error) {
	src, err := c.sourceFor(name)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("lexicon", name).Str("source", src.Name()).Msg("loading into cache")
	lex, err := LoadLexicon(ctx, name, src, c.minWordLength)
	if err != nil {
		return nil, err
	}
	return lex, nil
}

// LoadLexicon reads every line of src into a new lexicon.
func LoadLexicon(ctx context.Context, name string, src wordsource.Source, minWordLength int) (*lexicon.Lexicon, error) {
	words, err := src.Words(ctx)
	if err != nil {
		return nil, err
	}
	lex := lexicon.Load(name, slices.Values(words), minWordLength)
	log.Info().Str("lexicon", name).Str("source", src.Name()).
		Int("words", lex.WordCount()).Int("min-word-length", minWordLength).
		Msg("lexicon-loaded")
	return lex, nil
}
