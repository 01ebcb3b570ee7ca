package availability

import (
	"go.uber.org/zap"

	"fixora/models"
)

// ServiceResolver maps opaque worker/company-assigned tokens (ids, legacy
// keys, plain titles) to canonical catalog entries via the strategy chain.
type ServiceResolver struct {
	strategies []MatcherStrategy
	logger     *zap.Logger
}

// NewServiceResolver builds a resolver with the standard strategy chain.
func NewServiceResolver(cfg MatchConfig, logger *zap.Logger) *ServiceResolver {
	return &ServiceResolver{
		strategies: NewStrategyChain(cfg),
		logger:     logger,
	}
}

// ResolveToken returns the first candidate matched by the highest-priority
// strategy, or nil when nothing matches. Ties within a tier resolve to the
// first candidate in catalog order; multiple equally ranked candidates are a
// deterministic choice, not an error.
func (r *ServiceResolver) ResolveToken(token string, candidates []models.ServiceCatalogEntry) *models.ServiceCatalogEntry {
	if token == "" || len(candidates) == 0 {
		return nil
	}

	for _, strategy := range r.strategies {
		var winner *models.ServiceCatalogEntry
		matched := 0
		for i := range candidates {
			if res := strategy.Match(token, candidates[i]); res.Matched {
				matched++
				if winner == nil {
					winner = &candidates[i]
				}
			}
		}
		if winner != nil {
			if matched > 1 && r.logger != nil {
				r.logger.Debug("ambiguous token resolution, keeping first seen",
					zap.String("token", token),
					zap.String("strategy", strategy.Name()),
					zap.Int("candidates", matched))
			}
			return winner
		}
	}
	return nil
}

// ResolveTokens resolves a batch of tokens against the same candidate set,
// deduplicating by entry id. Unresolvable tokens are returned separately so
// the caller can widen the scope and retry them.
func (r *ServiceResolver) ResolveTokens(tokens []string, candidates []models.ServiceCatalogEntry) ([]models.ServiceCatalogEntry, []string) {
	var resolved []models.ServiceCatalogEntry
	var unresolved []string
	seen := make(map[string]struct{})

	for _, token := range tokens {
		entry := r.ResolveToken(token, candidates)
		if entry == nil {
			unresolved = append(unresolved, token)
			continue
		}
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		resolved = append(resolved, *entry)
	}
	return resolved, unresolved
}
