// The caller of the db creator.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/domino14/phrase_anagrammer/dbmaker"
	"github.com/domino14/phrase_anagrammer/internal/wordsource"
)

type Config struct {
	dbs         string
	forceCreate bool
	outputDir   string
	lexiconPath string
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("dbmaker", flag.ContinueOnError)

	fs.StringVar(&c.dbs, "dbs", "", "Pass in comma-separated list of lexica to make dbs for")
	fs.BoolVar(&c.forceCreate, "force", false, "Create DB even if it already exists (overwrite)")
	fs.StringVar(&c.lexiconPath, "lexicon-path", "./data/lexica", "directory holding <name>.txt word lists")
	fs.StringVar(&c.outputDir, "outputdir", "", "The output directory; defaults to <lexicon-path>/db")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.outputDir == "" {
		c.outputDir = filepath.Join(c.lexiconPath, "db")
	}
	return nil
}

func makeDbs(ctx context.Context, cfg *Config) int {
	failed := 0
	for _, name := range dbmaker.WordListNames(cfg.dbs) {
		src := &wordsource.File{Path: filepath.Join(cfg.lexiconPath, name+".txt")}
		_, err := dbmaker.CreateLexiconDatabase(ctx, name, src, cfg.outputDir, cfg.forceCreate)
		if err != nil {
			log.Err(err).Str("lexicon", name).Msg("skipping")
			failed++
		}
	}
	return failed
}

func main() {
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	log.Info().Str("dbs", cfg.dbs).Str("outputdir", cfg.outputDir).Msg("dbmaker-started")
	if len(dbmaker.WordListNames(cfg.dbs)) == 0 {
		log.Fatal().Msg("must provide a list of dbs to make")
	}
	if failed := makeDbs(context.Background(), cfg); failed > 0 {
		os.Exit(1)
	}
}
