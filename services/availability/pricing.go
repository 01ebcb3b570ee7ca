package availability

import "fixora/models"

// priceBook resolves offer prices for one query. It memoizes the minimum
// positive price per normalized name across the scoped catalog; the map is
// built once per query and never shared across queries.
type priceBook struct {
	cfg       MatchConfig
	minByName map[string]float64
}

func newPriceBook(cfg MatchConfig, scoped []models.ServiceCatalogEntry) *priceBook {
	book := &priceBook{cfg: cfg, minByName: make(map[string]float64, len(scoped))}
	book.absorb(scoped)
	return book
}

// absorb folds more entries into the per-name minimums. Used to widen a
// narrowly scoped memo with same-named entries from other companies.
func (p *priceBook) absorb(entries []models.ServiceCatalogEntry) {
	for _, entry := range entries {
		if entry.Price <= 0 {
			continue
		}
		key := Normalize(entry.Name)
		if current, ok := p.minByName[key]; !ok || entry.Price < current {
			p.minByName[key] = entry.Price
		}
	}
}

// hasMin reports whether any absorbed entry priced this normalized name.
func (p *priceBook) hasMin(name string) bool {
	_, ok := p.minByName[Normalize(name)]
	return ok
}

// priceFor resolves a price with the standard priority: the entry's own price
// (worker- or company-specific, depending on how the scope was resolved),
// then the minimum across same-named entries from any company, then the
// default.
func (p *priceBook) priceFor(entry models.ServiceCatalogEntry) float64 {
	if entry.Price > 0 {
		return entry.Price
	}
	if minimum, ok := p.minByName[Normalize(entry.Name)]; ok && minimum > 0 {
		return minimum
	}
	return p.cfg.DefaultPrice
}
