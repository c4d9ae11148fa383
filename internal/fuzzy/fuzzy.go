// Package fuzzy finds the closest known name for a misspelled one.
package fuzzy

import (
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultCutoff is the minimum similarity a candidate needs to be suggested.
const DefaultCutoff = 0.6

var dmp = diffmatchpatch.New()

// Ratio returns the similarity of a and b in [0, 1]: twice the number of matching
// characters divided by the total number of characters.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}
	matched := 0
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	return 2 * float64(matched) / float64(total)
}

// Closest returns the candidate most similar to word, if any reaches cutoff.
// Ties keep the earliest candidate.
func Closest(word string, candidates []string, cutoff float64) (string, bool) {
	best, bestScore := "", -1.0
	for _, c := range candidates {
		score := Ratio(word, c)
		if score >= cutoff && score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, bestScore >= 0
}

// MaxCached is the most suggestions a Suggester remembers. Misses are never
// cached.
const MaxCached = 256

// Suggester caches successful Closest lookups against a fixed candidate list.
// It is safe for concurrent use.
type Suggester struct {
	candidates []string
	cutoff     float64
	cache      sync.Map // word -> suggestion
	cached     atomic.Int64
}

// NewSuggester returns a Suggester over a copy of candidates.
func NewSuggester(candidates []string) *Suggester {
	return &Suggester{
		candidates: append([]string(nil), candidates...),
		cutoff:     DefaultCutoff,
	}
}

// Suggest returns the closest candidate to word.
func (s *Suggester) Suggest(word string) (string, bool) {
	if v, ok := s.cache.Load(word); ok {
		return v.(string), true
	}
	guess, ok := Closest(word, s.candidates, s.cutoff)
	if !ok {
		return "", false
	}
	if s.cached.Load() < MaxCached {
		if _, loaded := s.cache.LoadOrStore(word, guess); !loaded {
			s.cached.Add(1)
		}
	}
	return guess, true
}

// Cached returns the number of remembered suggestions.
func (s *Suggester) Cached() int { return int(s.cached.Load()) }
