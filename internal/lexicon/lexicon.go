// Package lexicon holds the dictionary used by the anagrammer: a plain prefix
// tree keyed by letter, where each node knows whether the path leading to it
// spells a whole word.
package lexicon

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMinWordLength is the shortest word Load keeps unless told otherwise.
const DefaultMinWordLength = 3

// Node is a single trie node. The root node stands for the empty prefix.
type Node struct {
	Children map[rune]*Node
	IsWord   bool
}

func newNode() *Node {
	return &Node{Children: make(map[rune]*Node)}
}

// Child returns the node reached from n by the given letter.
func (n *Node) Child(letter rune) (*Node, bool) {
	c, ok := n.Children[letter]
	return c, ok
}

// Lexicon owns a trie of words. It is append-only; once loaded it can be read
// from many goroutines.
type Lexicon struct {
	Name string

	root          *Node
	wordCount     int
	minWordLength int
}

// New creates an empty lexicon.
func New(name string) *Lexicon {
	return &Lexicon{Name: name, root: newNode()}
}

func (l *Lexicon) Root() *Node {
	return l.root
}

// WordCount is the number of AddWord calls, duplicates included.
func (l *Lexicon) WordCount() int {
	return l.wordCount
}

// MinWordLength is the minimum length applied by Load. It is 0 for a lexicon
// built only with AddWord.
func (l *Lexicon) MinWordLength() int {
	return l.minWordLength
}

// AddWord inserts an already normalized word. No length filter is applied
// here; Load is the place for that.
func (l *Lexicon) AddWord(word string) {
	node := l.root
	for _, letter := range word {
		next, ok := node.Children[letter]
		if !ok {
			next = newNode()
			node.Children[letter] = next
		}
		node = next
	}
	node.IsWord = true
	l.wordCount++
}

// Load builds a lexicon out of raw lines. Every line is normalized and only
// kept if it has at least minLength letters.
func Load(name string, lines iter.Seq[string], minLength int) *Lexicon {
	l := New(name)
	l.minWordLength = minLength
	for line := range lines {
		word := Normalize(line)
		if utf8.RuneCountInString(word) >= minLength {
			l.AddWord(word)
		}
	}
	return l
}

// Normalize strips all whitespace from s and upper-cases it. Both dictionary
// words and search phrases go through here.
func Normalize(s string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	// A Caser keeps state, so each call gets its own.
	return cases.Upper(language.Und).String(stripped)
}
