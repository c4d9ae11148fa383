package fuzzy

import (
	"fmt"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"abc", "xyz", 0},
		{"abcd", "abce", 0.75},
	}
	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); got != tt.want {
			t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"username", "avatar_url", "display_name"}

	got, ok := Closest("usrname", candidates, DefaultCutoff)
	if !ok || got != "username" {
		t.Errorf("Closest(usrname) = %q, %v; want username, true", got, ok)
	}

	if got, ok := Closest("zzz", candidates, DefaultCutoff); ok {
		t.Errorf("Closest(zzz) = %q, want no match", got)
	}
}

func TestSuggesterCaches(t *testing.T) {
	s := NewSuggester([]string{"theme", "likes"})

	for range 2 {
		got, ok := s.Suggest("theem")
		if !ok || got != "theme" {
			t.Fatalf("Suggest(theem) = %q, %v; want theme, true", got, ok)
		}
	}
	if _, ok := s.cache.Load("theem"); !ok {
		t.Error("expected suggestion to be cached")
	}

	if got, ok := s.Suggest("qqqqqq"); ok {
		t.Errorf("Suggest(qqqqqq) = %q, want no match", got)
	}
	if _, ok := s.cache.Load("qqqqqq"); ok {
		t.Error("misses should not be cached")
	}
	if s.Cached() != 1 {
		t.Errorf("Cached() = %d, want 1", s.Cached())
	}
}

func TestSuggesterBounded(t *testing.T) {
	s := NewSuggester([]string{"theme"})
	for i := range MaxCached + 50 {
		word := fmt.Sprintf("theme%d", i)
		if got, ok := s.Suggest(word); !ok || got != "theme" {
			t.Fatalf("Suggest(%s) = %q, %v; want theme, true", word, got, ok)
		}
	}
	if s.Cached() != MaxCached {
		t.Errorf("Cached() = %d, want %d", s.Cached(), MaxCached)
	}
}
