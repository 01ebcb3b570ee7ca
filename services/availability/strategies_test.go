package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixora/models"
)

func entry(id, name string) models.ServiceCatalogEntry {
	return models.ServiceCatalogEntry{ID: id, Name: name, IsActive: true}
}

func TestIDEqualityStrategy_AnyAlias(t *testing.T) {
	e := models.ServiceCatalogEntry{
		ID:             "svc-1",
		AdminServiceID: "adm-9",
		ServiceKey:     "deep_clean",
		AppServiceID:   "app-7",
		Name:           "Deep Cleaning",
	}
	s := idEqualityStrategy{}

	for _, token := range []string{"svc-1", "adm-9", "deep_clean", "app-7"} {
		res := s.Match(token, e)
		assert.True(t, res.Matched, "token %q", token)
		assert.Equal(t, 1, res.Tier)
	}
	assert.False(t, s.Match("svc-2", e).Matched)
}

func TestKeywordOverlapStrategy_Boundary(t *testing.T) {
	s := keywordOverlapStrategy{threshold: 0.6, floor: 3}

	// Exactly 3 of 5 significant words shared: ratio 0.6 is not strictly
	// greater than the threshold, so no match.
	atBoundary := s.Match(
		"house deep clean window floor",
		entry("a", "house deep clean gutter patio"),
	)
	assert.False(t, atBoundary.Matched)

	// 2 of 3 shared: ratio 0.667 clears the threshold.
	above := s.Match("sofa deep clean", entry("b", "sofa deep wash"))
	assert.True(t, above.Matched)
	assert.Equal(t, 4, above.Tier)
	assert.InDelta(t, 2.0/3.0, above.Confidence, 1e-9)
}

func TestKeywordOverlapStrategy_IgnoresShortWords(t *testing.T) {
	s := keywordOverlapStrategy{threshold: 0.6, floor: 3}

	// "and", "the", "rug" are at or below the floor and carry no signal.
	res := s.Match("the sofa and deep clean", entry("a", "sofa deep clean rug"))
	assert.True(t, res.Matched)
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}

func TestContainmentStrategy_EitherDirection(t *testing.T) {
	s := containmentStrategy{}
	assert.True(t, s.Match("Kitchen Deep Cleaning - Premium", entry("a", "Kitchen Deep Cleaning")).Matched)
	assert.True(t, s.Match("AC Repair", entry("a", "AC Repair - Split")).Matched)
	assert.False(t, s.Match("", entry("a", "AC Repair")).Matched)
}

func TestResolveToken_TierPriority(t *testing.T) {
	r := NewServiceResolver(DefaultMatchConfig(), nil)
	candidates := []models.ServiceCatalogEntry{
		entry("svc-contain", "Deep Cleaning Premium"), // would match tier 3
		entry("svc-exact", "Deep Cleaning"),           // matches tier 2
	}

	got := r.ResolveToken("deep cleaning", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "svc-exact", got.ID)
}

func TestResolveToken_FirstSeenWinsWithinTier(t *testing.T) {
	r := NewServiceResolver(DefaultMatchConfig(), nil)
	candidates := []models.ServiceCatalogEntry{
		entry("svc-1", "Deep Cleaning"),
		entry("svc-2", "Deep  Cleaning!"),
	}

	got := r.ResolveToken("Deep Cleaning", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "svc-1", got.ID)
}

func TestResolveToken_NoMatch(t *testing.T) {
	r := NewServiceResolver(DefaultMatchConfig(), nil)
	assert.Nil(t, r.ResolveToken("plumbing", []models.ServiceCatalogEntry{entry("a", "Sofa Cleaning")}))
	assert.Nil(t, r.ResolveToken("", []models.ServiceCatalogEntry{entry("a", "Sofa Cleaning")}))
	assert.Nil(t, r.ResolveToken("plumbing", nil))
}

func TestResolveTokens_DedupesAndReportsUnresolved(t *testing.T) {
	r := NewServiceResolver(DefaultMatchConfig(), nil)
	candidates := []models.ServiceCatalogEntry{
		entry("svc-1", "Sofa Cleaning"),
	}

	resolved, unresolved := r.ResolveTokens([]string{"svc-1", "Sofa Cleaning", "unknown-token-x"}, candidates)
	require.Len(t, resolved, 1)
	assert.Equal(t, "svc-1", resolved[0].ID)
	assert.Equal(t, []string{"unknown-token-x"}, unresolved)
}
