package anagrammer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Anagram is a finished result: words separated by single spaces.
type Anagram struct {
	Phrase   string
	Shortest int
	Longest  int
}

func NewAnagram(phrase string) Anagram {
	a := Anagram{Phrase: phrase}
	for i, w := range strings.Fields(phrase) {
		n := utf8.RuneCountInString(w)
		if i == 0 || n < a.Shortest {
			a.Shortest = n
		}
		if n > a.Longest {
			a.Longest = n
		}
	}
	return a
}

func (a Anagram) String() string {
	return a.Phrase
}

func (a Anagram) Words() []string {
	return strings.Fields(a.Phrase)
}

// ByWordLengths orders anagrams by their shortest word, then by their longest
// word, smallest first.
type ByWordLengths []Anagram

func (as ByWordLengths) Len() int      { return len(as) }
func (as ByWordLengths) Swap(i, j int) { as[i], as[j] = as[j], as[i] }
func (as ByWordLengths) Less(i, j int) bool {
	if as[i].Shortest != as[j].Shortest {
		return as[i].Shortest < as[j].Shortest
	}
	if as[i].Longest != as[j].Longest {
		return as[i].Longest < as[j].Longest
	}
	// Inverted so that Rank, which reverses everything, lists ties
	// alphabetically.
	return as[i].Phrase > as[j].Phrase
}

// Rank sorts anagrams in place, best first: longest shortest-word, then
// longest longest-word.
func Rank(anagrams []Anagram) []Anagram {
	sort.Sort(sort.Reverse(ByWordLengths(anagrams)))
	return anagrams
}

// Phrases returns the plain strings of anagrams, keeping their order.
func Phrases(anagrams []Anagram) []string {
	out := make([]string, len(anagrams))
	for i := range anagrams {
		out[i] = anagrams[i].Phrase
	}
	return out
}
