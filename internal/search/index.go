package search

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

// Match is one index hit, best matches first when returned from Search.
type Match struct {
	ID    string
	Score float64
}

// Index is the approximate text-matching structure over establishments.
// Implementations must tolerate typos and partial tokens, admit matches only
// above a similarity cutoff, and make Rebuild visible to concurrent readers.
type Index interface {
	// Rebuild replaces the indexed corpus. The current policy is a full
	// rebuild on every establishment mutation.
	Rebuild(establishments []model.Establishment)
	// Search returns ranked matches for the query, or nil when the query is
	// empty or shorter than the configured minimum.
	Search(query string) []Match
}

// Config tunes match admission.
type Config struct {
	// SimilarityThreshold (0..1) is the minimum Levenshtein similarity for a
	// near-match token. Zero means the default of 0.7.
	SimilarityThreshold float64
	// MinQueryLength is the shortest query worth scanning for. Zero means 2.
	MinQueryLength int
}

type entry struct {
	id     string
	fields []string // lowercased name, address, city, cuisine
	tokens []string
}

type fuzzyIndex struct {
	mu      sync.RWMutex
	cfg     Config
	entries []entry
}

// NewIndex returns the default fuzzy index implementation.
func NewIndex(cfg Config) Index {
	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 1 {
		cfg.SimilarityThreshold = 0.7
	}
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = 2
	}
	return &fuzzyIndex{cfg: cfg}
}

func (idx *fuzzyIndex) Rebuild(establishments []model.Establishment) {
	entries := make([]entry, 0, len(establishments))
	for _, est := range establishments {
		fields := []string{est.Name, est.Address, est.City}
		if est.Cuisine != nil && *est.Cuisine != "" {
			fields = append(fields, *est.Cuisine)
		}

		e := entry{id: est.ID}
		seen := make(map[string]bool)
		for _, f := range fields {
			lower := strings.ToLower(f)
			e.fields = append(e.fields, lower)
			for _, tok := range strings.FieldsFunc(lower, isTokenBoundary) {
				if !seen[tok] {
					seen[tok] = true
					e.tokens = append(e.tokens, tok)
				}
			}
		}
		entries = append(entries, e)
	}

	idx.mu.Lock()
	idx.entries = entries
	idx.mu.Unlock()
}

func (idx *fuzzyIndex) Search(query string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < idx.cfg.MinQueryLength {
		return nil
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var matches []Match
	for _, e := range idx.entries {
		if score, ok := idx.score(q, e); ok {
			matches = append(matches, Match{ID: e.id, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// score rates one entry against a normalized query. Admission rules, in
// decreasing strength: case-folded substring, per-token similarity above the
// threshold, fuzzy subsequence across a whole field.
func (idx *fuzzyIndex) score(q string, e entry) (float64, bool) {
	best := 0.0

	for _, f := range e.fields {
		if strings.Contains(f, q) {
			return 1.0, true
		}
	}

	for _, tok := range e.tokens {
		if sim := levenshtein.Similarity(q, tok, nil); sim >= idx.cfg.SimilarityThreshold && sim > best {
			best = sim
		}
	}

	if best == 0 {
		for _, f := range e.fields {
			if rank := fuzzy.RankMatchNormalizedFold(q, f); rank >= 0 {
				score := 1.0 / (1.0 + float64(rank))
				if score < idx.cfg.SimilarityThreshold {
					score = idx.cfg.SimilarityThreshold
				}
				if score > best {
					best = score
				}
			}
		}
	}

	return best, best > 0
}

func isTokenBoundary(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ',', '.', '-', '/', '\'':
		return true
	}
	return false
}
