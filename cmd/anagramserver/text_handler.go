package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/domino14/phrase_anagrammer/internal/anagramserver"
)

// Useful for chat bots.

const (
	txtLimit = 375
)

func writeError(w http.ResponseWriter, err string) {
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(err))
}

// errorMessage drops the connect code prefix from err.
func errorMessage(err error) string {
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr.Message()
	}
	return err.Error()
}

func plainTextHandler(anagramServer *anagramserver.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Query().Get("method")
		if method == "" {
			writeError(w, "method required")
			return
		}
		switch method {
		case "anagram":
			anagram(anagramServer, w, r)
		case "lexicon":
			lexiconInfo(anagramServer, w, r)
		default:
			writeError(w, "method not found")
		}
	})
}

func writeAnagrams(w http.ResponseWriter, anagrams []string, total int) {
	var s strings.Builder
	if total == 0 {
		w.Write([]byte("no anagrams found"))
		return
	}
	plural := ""
	if total > 1 {
		plural = "s"
	}
	s.WriteString(fmt.Sprintf("%d anagram%s found: ", total, plural))
	for i, a := range anagrams {
		if i > 0 {
			s.WriteString(" / ")
		}
		s.WriteString(a)
		if s.Len() > txtLimit {
			s.WriteString(" (...truncated)")
			break
		}
	}
	w.Write([]byte(s.String()))
}

func anagram(anagramServer *anagramserver.Server, w http.ResponseWriter, r *http.Request) {
	letters := r.URL.Query().Get("letters")
	if letters == "" {
		writeError(w, "letters required")
		return
	}
	res, err := anagramServer.Anagram(r.Context(), connect.NewRequest(&anagramserver.AnagramRequest{
		Lexicon: r.URL.Query().Get("lexicon"),
		Phrase:  letters,
	}))
	if err != nil {
		writeError(w, errorMessage(err))
		return
	}
	writeAnagrams(w, res.Msg.Anagrams, res.Msg.NumAnagrams)
}

func lexiconInfo(anagramServer *anagramserver.Server, w http.ResponseWriter, r *http.Request) {
	res, err := anagramServer.LexiconInfo(r.Context(), connect.NewRequest(&anagramserver.LexiconInfoRequest{
		Lexicon: r.URL.Query().Get("lexicon"),
	}))
	if err != nil {
		writeError(w, errorMessage(err))
		return
	}
	fmt.Fprintf(w, "%s: %d words of %d or more letters",
		res.Msg.Lexicon, res.Msg.NumWords, res.Msg.MinWordLength)
}
