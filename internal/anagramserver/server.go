package anagramserver

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"

	"github.com/domino14/phrase_anagrammer/config"
	"github.com/domino14/phrase_anagrammer/internal/anagrammer"
	"github.com/domino14/phrase_anagrammer/internal/auth"
	"github.com/domino14/phrase_anagrammer/internal/lexicon"
	"github.com/domino14/phrase_anagrammer/internal/stores"
)

type AnagramRequest struct {
	Lexicon string `json:"lexicon"`
	Phrase  string `json:"phrase"`
	// Limit caps how many anagrams come back; 0 means all of them.
	Limit int `json:"limit,omitempty"`
}

type AnagramResponse struct {
	Lexicon     string   `json:"lexicon"`
	Phrase      string   `json:"phrase"`
	Anagrams    []string `json:"anagrams"`
	NumAnagrams int      `json:"num_anagrams"`
	Cached      bool     `json:"cached"`
}

type LexiconInfoRequest struct {
	Lexicon string `json:"lexicon"`
}

type LexiconInfoResponse struct {
	Lexicon       string `json:"lexicon"`
	NumWords      int    `json:"num_words"`
	MinWordLength int    `json:"min_word_length"`
}

type Server struct {
	Config *config.Config
	Store  stores.Store

	lexica *lexiconCache
}

func NewServer(cfg *config.Config, store stores.Store) *Server {
	if store == nil {
		store = stores.Nop{}
	}
	return &Server{
		Config: cfg,
		Store:  store,
		lexica: newLexiconCache(cfg.LexiconPath, cfg.MinWordLength),
	}
}

// AddLexicon makes an already built lexicon available under its name.
func (s *Server) AddLexicon(lex *lexicon.Lexicon) {
	s.lexica.add(lex)
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	log.Info().Msgf("%s took %s", name, elapsed)
}

func invalidArgError(msg string) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
}

func lexiconError(err error) *connect.Error {
	switch {
	case errors.Is(err, ErrBadLexiconName):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ErrLexiconNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

func (s *Server) lexiconName(requested string) string {
	if requested == "" {
		return s.Config.DefaultLexicon
	}
	return requested
}

func (s *Server) Anagram(ctx context.Context, req *connect.Request[AnagramRequest]) (
	*connect.Response[AnagramResponse], error) {
	defer timeTrack(time.Now(), "anagram")

	phrase := lexicon.Normalize(req.Msg.Phrase)
	if phrase == "" {
		return nil, invalidArgError(anagrammer.ErrEmptyInput.Error())
	}
	if utf8.RuneCountInString(phrase) > s.Config.MaxPhraseLength {
		return nil, invalidArgError("query too complex")
	}
	if req.Msg.Limit < 0 {
		return nil, invalidArgError("limit must not be negative")
	}

	lexName := s.lexiconName(req.Msg.Lexicon)
	lex, err := s.lexica.get(ctx, lexName)
	if err != nil {
		return nil, lexiconError(err)
	}

	logger := log.With().Str("lexicon", lexName).Str("phrase", phrase).Logger()
	if user := auth.UserFromContext(ctx); user != nil {
		logger = logger.With().Str("user", user.Username).Logger()
	}

	key := stores.SearchKey{
		Lexicon:       lexName,
		MinWordLength: lex.MinWordLength(),
		Phrase:        phrase,
	}
	anagrams, err := s.Store.Get(ctx, key)
	cached := err == nil
	if err != nil {
		if !errors.Is(err, stores.ErrNotFound) {
			logger.Err(err).Msg("store-get-failed")
		}
		ranked, err := anagrammer.Search(lex, phrase)
		if err != nil {
			return nil, invalidArgError(err.Error())
		}
		anagrams = anagrammer.Phrases(ranked)
		if err := s.Store.Put(ctx, key, anagrams); err != nil {
			logger.Err(err).Msg("store-put-failed")
		}
	}
	logger.Info().Int("num-anagrams", len(anagrams)).Bool("cached", cached).Msg("anagrammed")

	resp := &AnagramResponse{
		Lexicon:     lexName,
		Phrase:      phrase,
		Anagrams:    anagrams,
		NumAnagrams: len(anagrams),
		Cached:      cached,
	}
	if req.Msg.Limit > 0 && len(anagrams) > req.Msg.Limit {
		resp.Anagrams = anagrams[:req.Msg.Limit]
	}
	return connect.NewResponse(resp), nil
}

func (s *Server) LexiconInfo(ctx context.Context, req *connect.Request[LexiconInfoRequest]) (
	*connect.Response[LexiconInfoResponse], error) {

	lexName := s.lexiconName(req.Msg.Lexicon)
	lex, err := s.lexica.get(ctx, lexName)
	if err != nil {
		return nil, lexiconError(err)
	}
	return connect.NewResponse(&LexiconInfoResponse{
		Lexicon:       lexName,
		NumWords:      lex.WordCount(),
		MinWordLength: lex.MinWordLength(),
	}), nil
}
