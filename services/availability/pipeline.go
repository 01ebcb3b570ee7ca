package availability

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"fixora/models"

	"go.uber.org/zap"
)

// FindAvailableOffers runs the full pipeline: scope resolution, exclusion,
// availability filtering, pricing, dedupe and sort.
func (s *DefaultAvailabilityService) FindAvailableOffers(ctx context.Context, query models.MatchQuery) (models.OfferResult, error) {
	candidates, err := s.resolveScope(ctx, query)
	if err != nil {
		return models.OfferResult{}, err
	}

	// The price memo is built over the full scoped set, before exclusion, so
	// a zero-priced entry can still inherit the cheapest same-named offer.
	prices := newPriceBook(s.Config, candidates)

	candidates = dropExcluded(candidates, query.ExcludedServiceNames)
	if len(candidates) == 0 {
		return models.OfferResult{Verified: true}, nil
	}

	s.widenPriceMemo(ctx, prices, candidates)

	checked := s.checkAvailability(ctx, candidates, query.Date, query.SlotLabel)

	var primary []checkedCandidate
	for _, c := range checked {
		if c.verdict.Status == models.StatusAvailable {
			primary = append(primary, c)
		}
	}

	// Deliberate UX fallback: when filtering eliminates everything, surface
	// the unfiltered set tagged unverified rather than an empty screen.
	verified := true
	if len(primary) == 0 && len(checked) > 0 {
		primary = checked
		verified = false
	}

	offers := buildOffers(primary, prices)
	return models.OfferResult{Offers: offers, Verified: verified}, nil
}

// resolveScope fetches the candidate catalog entries for the query, narrowest
// scope first. A failed fetch here is fatal to the query and retryable.
func (s *DefaultAvailabilityService) resolveScope(ctx context.Context, query models.MatchQuery) ([]models.ServiceCatalogEntry, error) {
	var (
		entries []models.ServiceCatalogEntry
		err     error
		scope   string
	)

	switch {
	case query.WorkerID != "":
		scope = "worker " + query.WorkerID
		entries, err = s.resolveWorkerScope(ctx, query.WorkerID)
	case len(query.ServiceScopeIDs) > 0:
		scope = "service ids"
		entries, err = s.Catalog.ListByIDs(ctx, query.ServiceScopeIDs)
	case query.CompanyID != "":
		scope = "company " + query.CompanyID
		entries, err = s.Catalog.ListByCompany(ctx, query.CompanyID, true)
	case query.CategoryID != "":
		scope = "category " + query.CategoryID
		entries, err = s.Catalog.ListByCategory(ctx, query.CategoryID, true)
	default:
		return nil, fmt.Errorf("match query has no scope: worker, service ids, company or category required")
	}
	if err != nil {
		return nil, &ScopeError{Scope: scope, Err: err}
	}

	active := entries[:0]
	for _, e := range entries {
		if e.IsActive {
			active = append(active, e)
		}
	}
	return active, nil
}

// resolveWorkerScope maps the worker's assigned-service tokens to canonical
// entries: direct id lookup first, then a company-wide fuzzy scan for the
// tokens the direct lookup missed.
func (s *DefaultAvailabilityService) resolveWorkerScope(ctx context.Context, workerID string) ([]models.ServiceCatalogEntry, error) {
	worker, err := s.Aggregator.Workers.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if len(worker.AssignedServices) == 0 {
		return s.Catalog.ListByCompany(ctx, worker.CompanyID, true)
	}

	direct, err := s.Catalog.ListByIDs(ctx, worker.AssignedServices)
	if err != nil {
		return nil, err
	}

	resolved := direct
	seen := make(map[string]struct{}, len(direct))
	directIDs := make(map[string]struct{}, len(direct))
	for _, e := range direct {
		seen[e.ID] = struct{}{}
		directIDs[e.ID] = struct{}{}
	}

	var leftover []string
	for _, token := range worker.AssignedServices {
		if _, ok := directIDs[token]; !ok {
			leftover = append(leftover, token)
		}
	}
	if len(leftover) == 0 {
		return resolved, nil
	}

	companyEntries, err := s.Catalog.ListByCompany(ctx, worker.CompanyID, true)
	if err != nil {
		return nil, err
	}
	fuzzy, unresolved := s.Resolver.ResolveTokens(leftover, companyEntries)
	for _, e := range fuzzy {
		if _, ok := seen[e.ID]; ok {
			continue
		}
		seen[e.ID] = struct{}{}
		resolved = append(resolved, e)
	}
	if len(unresolved) > 0 && s.Logger != nil {
		s.Logger.Warn("worker tokens left unresolved",
			zap.String("workerID", workerID),
			zap.Strings("tokens", unresolved))
	}
	return resolved, nil
}

// widenPriceMemo pulls same-named prices from beyond the scope for zero-priced
// survivors, so a company- or worker-scoped query still inherits the minimum
// another company charges before the configured default kicks in. Lookups are
// best effort: a failed fetch leaves the default in place.
func (s *DefaultAvailabilityService) widenPriceMemo(ctx context.Context, prices *priceBook, candidates []models.ServiceCatalogEntry) {
	fetched := make(map[string]struct{})
	for _, c := range candidates {
		if c.Price > 0 || prices.hasMin(c.Name) || c.CategoryID == "" {
			continue
		}
		if _, ok := fetched[c.CategoryID]; ok {
			continue
		}
		fetched[c.CategoryID] = struct{}{}

		siblings, err := s.Catalog.ListByCategory(ctx, c.CategoryID, true)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("price widening lookup failed",
					zap.String("categoryID", c.CategoryID), zap.Error(err))
			}
			continue
		}
		prices.absorb(siblings)
	}
}

// dropExcluded removes candidates whose name strictly equals an excluded
// name. Exclusion is always exact-normalized, never fuzzy: entries whose
// names merely overlap must survive.
func dropExcluded(candidates []models.ServiceCatalogEntry, excluded []string) []models.ServiceCatalogEntry {
	if len(excluded) == 0 {
		return candidates
	}
	excludedSet := normalizeSet(excluded)
	kept := candidates[:0]
	for _, c := range candidates {
		if _, ok := excludedSet[Normalize(c.Name)]; ok {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

type checkedCandidate struct {
	entry   models.ServiceCatalogEntry
	verdict models.CompanyAvailability
}

// checkAvailability fans out one aggregator run per candidate with bounded
// concurrency. Every check is an independent side-effect-free read over the
// same snapshot, so completion order cannot change the result. A candidate
// whose lookup fails is dropped; the query itself never aborts here.
func (s *DefaultAvailabilityService) checkAvailability(ctx context.Context, candidates []models.ServiceCatalogEntry, date, slotLabel string) []checkedCandidate {
	limit := s.Config.MaxConcurrentChecks
	if limit <= 0 {
		limit = 1
	}
	results := make([]*checkedCandidate, len(candidates))
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, entry := range candidates {
		wg.Add(1)
		go func(i int, entry models.ServiceCatalogEntry) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			verdict, err := s.Aggregator.Evaluate(ctx, entry.CompanyID, entry.Name, date, slotLabel)
			if err != nil {
				if s.Logger != nil {
					s.Logger.Warn("availability check failed, dropping candidate",
						zap.String("serviceID", entry.ID),
						zap.String("companyID", entry.CompanyID),
						zap.Error(err))
				}
				return
			}
			results[i] = &checkedCandidate{entry: entry, verdict: verdict}
		}(i, entry)
	}
	wg.Wait()

	checked := make([]checkedCandidate, 0, len(candidates))
	for _, r := range results {
		if r != nil {
			checked = append(checked, *r)
		}
	}
	return checked
}

// buildOffers prices and shapes the surviving candidates, deduplicates by
// catalog id and sorts ascending by price then name.
func buildOffers(checked []checkedCandidate, prices *priceBook) []models.AvailabilityOffer {
	seen := make(map[string]struct{}, len(checked))
	offers := make([]models.AvailabilityOffer, 0, len(checked))

	for _, c := range checked {
		if _, ok := seen[c.entry.ID]; ok {
			continue
		}
		seen[c.entry.ID] = struct{}{}
		offers = append(offers, models.AvailabilityOffer{
			ServiceID:        c.entry.ID,
			ServiceName:      c.entry.Name,
			CompanyID:        c.entry.CompanyID,
			Price:            prices.priceFor(c.entry),
			Status:           c.verdict.Status,
			AvailableWorkers: c.verdict.AvailableWorkers,
			TotalWorkers:     c.verdict.TotalWorkers,
		})
	}

	sort.Slice(offers, func(i, j int) bool {
		if offers[i].Price == offers[j].Price {
			return offers[i].ServiceName < offers[j].ServiceName
		}
		return offers[i].Price < offers[j].Price
	})
	return offers
}
