package anagrammer

import (
	"testing"

	"github.com/matryer/is"
)

type lengthtestpair struct {
	phrase   string
	shortest int
	longest  int
}

var lengthTests = []lengthtestpair{
	{"CATDOG", 6, 6},
	{"CAT DOG", 3, 3},
	{"GCAT DO", 2, 4},
	{"A AB ABC", 1, 3},
	{"AÑO ÑU", 2, 3},
}

func TestNewAnagram(t *testing.T) {
	is := is.New(t)
	for _, tc := range lengthTests {
		a := NewAnagram(tc.phrase)
		is.Equal(a.Shortest, tc.shortest)
		is.Equal(a.Longest, tc.longest)
		is.Equal(a.String(), tc.phrase)
	}
}

func TestRank(t *testing.T) {
	is := is.New(t)
	anagrams := []Anagram{
		NewAnagram("GCAT DO"),
		NewAnagram("CAT DOG"),
		NewAnagram("CATDOG"),
	}
	is.Equal(Phrases(Rank(anagrams)), []string{"CATDOG", "CAT DOG", "GCAT DO"})
}

func TestRankLongestBreaksTies(t *testing.T) {
	is := is.New(t)
	anagrams := []Anagram{
		NewAnagram("AB CDE"),
		NewAnagram("AB CDEFG"),
		NewAnagram("ABC DEF"),
		NewAnagram("A BCDEFGH"),
	}
	is.Equal(Phrases(Rank(anagrams)), []string{"ABC DEF", "AB CDEFG", "AB CDE", "A BCDEFGH"})
}

func TestRankIsDeterministic(t *testing.T) {
	is := is.New(t)
	want := []string{"CAT DOG", "CAT GOD", "DOG CAT", "GOD CAT"}
	orders := [][]string{
		{"GOD CAT", "CAT DOG", "DOG CAT", "CAT GOD"},
		{"CAT GOD", "GOD CAT", "CAT DOG", "DOG CAT"},
	}
	for _, order := range orders {
		anagrams := make([]Anagram, len(order))
		for i, p := range order {
			anagrams[i] = NewAnagram(p)
		}
		is.Equal(Phrases(Rank(anagrams)), want)
	}
}

func TestByWordLengthsAscending(t *testing.T) {
	is := is.New(t)
	as := ByWordLengths{NewAnagram("CATDOG"), NewAnagram("GCAT DO"), NewAnagram("CAT DOG")}
	is.True(as.Less(1, 2))  // (2,4) before (3,3)
	is.True(as.Less(2, 0))  // (3,3) before (6,6)
	is.True(!as.Less(0, 1)) // (6,6) after (2,4)
}
