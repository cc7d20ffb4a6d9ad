package config

import (
	"errors"

	"github.com/namsral/flag"

	"github.com/domino14/phrase_anagrammer/internal/lexicon"
)

type Config struct {
	LogLevel string

	// LexiconPath holds <name>.txt word lists and db/<name>.db lexicon databases.
	LexiconPath    string
	DefaultLexicon string
	// Dictionary is the word list the command-line anagrammer reads.
	Dictionary    string
	MinWordLength int
	// MaxPhraseLength caps the letters a server request may search.
	MaxPhraseLength int

	DBPath           string
	DBURL            string
	DBMigrationsPath string

	ListenAddr string
	SecretKey  string

	args []string
}

// Load loads the configs from the given arguments. Any flag can also be set
// with its environment variable, e.g. MIN_WORD_LENGTH.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("anagrammer", flag.ContinueOnError)

	fs.StringVar(&c.LogLevel, "log-level", "info", "log level")
	fs.StringVar(&c.LexiconPath, "lexicon-path", "./data/lexica", "directory holding word lists")
	fs.StringVar(&c.DefaultLexicon, "default-lexicon", "words", "the lexicon to use when none is given")
	fs.StringVar(&c.Dictionary, "dictionary", "words.txt", "word list (or .db lexicon database) for the command-line anagrammer")
	fs.IntVar(&c.MinWordLength, "min-word-length", lexicon.DefaultMinWordLength, "shortest dictionary word to load")
	fs.IntVar(&c.MaxPhraseLength, "max-phrase-length", 20, "longest phrase the server will anagram")
	fs.StringVar(&c.DBPath, "db-path", "", "sqlite file to store search results in")
	fs.StringVar(&c.DBURL, "db-url", "", "postgres url to store search results in, used instead of db-path")
	fs.StringVar(&c.DBMigrationsPath, "db-migrations-path", "", "migrations source url; the embedded migrations are used if empty")
	fs.StringVar(&c.ListenAddr, "listen-addr", ":8180", "address the server listens on")
	fs.StringVar(&c.SecretKey, "secret-key", "", "HMAC key for JWT auth; auth is off if empty, and the /plain handler is only served when it is")

	err := fs.Parse(args)
	if err != nil {
		return err
	}
	c.args = fs.Args()
	if c.MinWordLength < 1 {
		return errors.New("min-word-length must be at least 1")
	}
	if c.MaxPhraseLength < 1 {
		return errors.New("max-phrase-length must be at least 1")
	}
	return nil
}

// Args are the positional arguments left after the flags.
func (c *Config) Args() []string {
	return c.args
}
