package availability

import (
	"strings"

	"fixora/models"
)

// MatchResult reports whether a strategy matched a token to an entry, at which
// tier, and with what confidence. Lower tier means higher priority.
type MatchResult struct {
	Matched    bool
	Tier       int
	Confidence float64
}

// MatcherStrategy is one rung of the token resolution chain. Strategies are
// evaluated in priority order with early exit, so each one stays small and
// unit-testable in isolation.
type MatcherStrategy interface {
	Name() string
	Match(token string, entry models.ServiceCatalogEntry) MatchResult
}

// NewStrategyChain returns the ordered resolution chain:
// exact id, exact normalized name, substring containment, keyword overlap.
func NewStrategyChain(cfg MatchConfig) []MatcherStrategy {
	return []MatcherStrategy{
		idEqualityStrategy{},
		exactNameStrategy{},
		containmentStrategy{},
		keywordOverlapStrategy{threshold: cfg.OverlapThreshold, floor: cfg.KeywordFloor},
	}
}

// idEqualityStrategy matches when the token equals any identifier the entry is
// known by across the independently keyed catalogs.
type idEqualityStrategy struct{}

func (idEqualityStrategy) Name() string { return "id_equality" }

func (idEqualityStrategy) Match(token string, entry models.ServiceCatalogEntry) MatchResult {
	for _, id := range entry.AliasIDs() {
		if token == id {
			return MatchResult{Matched: true, Tier: 1, Confidence: 1.0}
		}
	}
	return MatchResult{}
}

// exactNameStrategy matches on exact normalized name equality.
type exactNameStrategy struct{}

func (exactNameStrategy) Name() string { return "exact_name" }

func (exactNameStrategy) Match(token string, entry models.ServiceCatalogEntry) MatchResult {
	if StrictEquals(token, entry.Name) {
		return MatchResult{Matched: true, Tier: 2, Confidence: 1.0}
	}
	return MatchResult{}
}

// containmentStrategy matches when either normalized name contains the other.
type containmentStrategy struct{}

func (containmentStrategy) Name() string { return "containment" }

func (containmentStrategy) Match(token string, entry models.ServiceCatalogEntry) MatchResult {
	a, b := Normalize(token), Normalize(entry.Name)
	if a == "" || b == "" {
		return MatchResult{}
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return MatchResult{Matched: true, Tier: 3, Confidence: 0.8}
	}
	return MatchResult{}
}

// keywordOverlapStrategy matches when the significant-word overlap ratio is
// strictly greater than the threshold. The ratio denominator is the smaller
// word set, so a short token can still claim a long descriptive title.
type keywordOverlapStrategy struct {
	threshold float64
	floor     int
}

func (keywordOverlapStrategy) Name() string { return "keyword_overlap" }

func (s keywordOverlapStrategy) Match(token string, entry models.ServiceCatalogEntry) MatchResult {
	wordsA := significantWords(Normalize(token), s.floor)
	wordsB := significantWords(Normalize(entry.Name), s.floor)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return MatchResult{}
	}

	setB := make(map[string]struct{}, len(wordsB))
	for _, w := range wordsB {
		setB[w] = struct{}{}
	}
	matching := 0
	for _, w := range wordsA {
		if _, ok := setB[w]; ok {
			matching++
		}
	}

	smaller := len(wordsA)
	if len(wordsB) < smaller {
		smaller = len(wordsB)
	}
	ratio := float64(matching) / float64(smaller)
	if ratio > s.threshold {
		return MatchResult{Matched: true, Tier: 4, Confidence: ratio}
	}
	return MatchResult{}
}
