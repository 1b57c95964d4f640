package automaton

import "github.com/coregx/ahocorasick"

// ahoCorasickThreshold is the number of words above which WordIndex
// prefers building an Aho-Corasick automaton over the plain set lookup in
// Contains, mirroring the >8-literal threshold the pack's Aho-Corasick
// strategy selection uses for literal alternations.
const ahoCorasickThreshold = 8

// WordIndex accelerates membership queries against a fixed word set,
// composed alongside an NFA built by FromWords rather than folded into
// Test's simulation contract. Words are matched as complete strings, not
// as substrings of a haystack, so Contains only ever reports whole-word
// hits.
type WordIndex struct {
	words map[string]bool
	aho   *ahocorasick.Automaton
}

// NewWordIndex builds an index over words. When len(words) exceeds
// ahoCorasickThreshold it also builds an Aho-Corasick automaton so
// repeated Contains calls amortize the pattern-matching cost; below the
// threshold a plain set lookup is cheaper to build and just as fast to
// query.
func NewWordIndex(words [][]rune) (*WordIndex, error) {
	idx := &WordIndex{words: make(map[string]bool, len(words))}
	for _, w := range words {
		idx.words[string(w)] = true
	}

	if len(words) > ahoCorasickThreshold {
		builder := ahocorasick.NewBuilder()
		for _, w := range words {
			builder.AddPattern([]byte(string(w)))
		}
		auto, err := builder.Build()
		if err != nil {
			// Fall back to the plain set; the automaton is an
			// accelerator, not a correctness requirement.
			return idx, nil
		}
		idx.aho = auto
	}
	return idx, nil
}

// Contains reports whether word is exactly one of the indexed words.
func (idx *WordIndex) Contains(word []rune) bool {
	s := string(word)
	if idx.aho != nil {
		return idx.aho.IsMatch([]byte(s)) && idx.words[s]
	}
	return idx.words[s]
}
