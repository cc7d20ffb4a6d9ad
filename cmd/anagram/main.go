// Command anagram prints every way to rearrange a phrase into dictionary
// words, best first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/phrase_anagrammer/config"
	"github.com/domino14/phrase_anagrammer/internal/anagrammer"
	"github.com/domino14/phrase_anagrammer/internal/anagramserver"
	"github.com/domino14/phrase_anagrammer/internal/lexicon"
	"github.com/domino14/phrase_anagrammer/internal/wordsource"
)

var errUsage = errors.New(`usage: anagram [flags] "word(s)"`)

func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	phrase := lexicon.Normalize(strings.Join(cfg.Args(), " "))
	if phrase == "" {
		return errUsage
	}
	log.Info().Str("phrase", phrase).Msg("using-input")
	log.Info().Str("dictionary", cfg.Dictionary).Msg("looking-for-dictionary")

	name := strings.TrimSuffix(filepath.Base(cfg.Dictionary), filepath.Ext(cfg.Dictionary))
	lex, err := anagramserver.LoadLexicon(ctx, name, wordsource.ForPath(cfg.Dictionary), cfg.MinWordLength)
	if err != nil {
		return err
	}
	log.Info().Int("words", lex.WordCount()).Msg("dictionary-loaded")

	ranked, err := anagrammer.Search(lex, phrase)
	if err != nil {
		return err
	}
	for _, a := range ranked {
		fmt.Fprintln(out, a)
	}
	return nil
}

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("anagram-failed")
	}
}
