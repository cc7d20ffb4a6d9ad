// Package anagrammer finds every way to split a phrase into dictionary words
// that use up all of its letters exactly once.
//
// The search is a plain depth-first walk over the lexicon trie. Letters are
// tracked by their position in the phrase, so a repeated letter can be used
// as many times as it appears, but never twice from the same spot.
package anagrammer

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/phrase_anagrammer/internal/lexicon"
)

// ErrEmptyInput is returned for phrases that have no letters left after
// normalization.
var ErrEmptyInput = errors.New("phrase has no letters")

type searcher struct {
	root    *lexicon.Node
	letters []rune
	found   map[string]struct{}
}

// FindAnagrams returns every full-cover anagram of phrase, in no particular
// order. The phrase is normalized first.
func FindAnagrams(root *lexicon.Node, phrase string) ([]Anagram, error) {
	letters := []rune(lexicon.Normalize(phrase))
	if len(letters) == 0 {
		return nil, ErrEmptyInput
	}
	s := &searcher{
		root:    root,
		letters: letters,
		found:   make(map[string]struct{}),
	}
	s.search(root, "", make([]bool, len(letters)), 0)

	return lo.Map(lo.Keys(s.found), func(p string, _ int) Anagram {
		return NewAnagram(p)
	}), nil
}

// search extends the open word ending at node. used is never written to; each
// step that consumes a letter works on its own copy so backtracking needs no
// undo.
func (s *searcher) search(node *lexicon.Node, soFar string, used []bool, numUsed int) {
	// Letters already tried from this node in this call. Trying the same
	// letter from a later position would only repeat the same branch.
	tried := make(map[rune]struct{})

	for idx, letter := range s.letters {
		if used[idx] {
			continue
		}
		if _, ok := tried[letter]; ok {
			continue
		}
		next, ok := node.Child(letter)
		if !ok {
			continue
		}
		tried[letter] = struct{}{}

		nextUsed := make([]bool, len(used))
		copy(nextUsed, used)
		nextUsed[idx] = true
		nextSoFar := soFar + string(letter)

		if next.IsWord {
			if numUsed+1 == len(s.letters) {
				s.found[nextSoFar] = struct{}{}
			}
			// Close this word and start another one.
			s.search(s.root, nextSoFar+" ", nextUsed, numUsed+1)
		}
		s.search(next, nextSoFar, nextUsed, numUsed+1)
	}
}

// Search anagrams phrase against lex and returns the results ranked.
func Search(lex *lexicon.Lexicon, phrase string) ([]Anagram, error) {
	start := time.Now()
	anagrams, err := FindAnagrams(lex.Root(), phrase)
	if err != nil {
		return nil, err
	}
	ranked := Rank(anagrams)
	log.Debug().Str("lexicon", lex.Name).Str("phrase", phrase).
		Int("found", len(ranked)).Dur("elapsed", time.Since(start)).
		Msg("anagram-search")
	return ranked, nil
}
