package availability

import (
	"context"

	bookingRepo "fixora/database/repository/booking"
	catalogRepo "fixora/database/repository/catalog"
	workerRepo "fixora/database/repository/worker"
	"fixora/models"

	"go.uber.org/zap"
)

// Service is the query surface of the availability & matching engine. It is a
// pure computation over snapshots read from the external store: no state is
// persisted and no reservation is taken.
type Service interface {
	// FindAvailableOffers answers: which providers, at what price, can serve
	// this request now, excluding what the customer already has.
	FindAvailableOffers(ctx context.Context, query models.MatchQuery) (models.OfferResult, error)
	// ResolveServiceToken maps one opaque token to a canonical catalog entry,
	// or nil when nothing matches.
	ResolveServiceToken(token string, candidates []models.ServiceCatalogEntry) *models.ServiceCatalogEntry
	// CompanyAvailability returns the company-level verdict for one service
	// type in one slot, including per-worker detail lines.
	CompanyAvailability(ctx context.Context, companyID, serviceType, date, slotLabel string) (models.CompanyAvailability, error)
}

// DefaultAvailabilityService implements Service.
type DefaultAvailabilityService struct {
	Catalog    catalogRepo.CatalogRepository
	Resolver   *ServiceResolver
	Aggregator *CompanyAggregator
	Config     MatchConfig
	Logger     *zap.Logger
}

// NewDefaultAvailabilityService wires the engine from its repositories.
func NewDefaultAvailabilityService(
	catalog catalogRepo.CatalogRepository,
	workers workerRepo.WorkerRepository,
	bookings bookingRepo.BookingRepository,
	cfg MatchConfig,
	logger *zap.Logger,
) *DefaultAvailabilityService {
	evaluator := &WorkerEvaluator{Bookings: bookings}
	return &DefaultAvailabilityService{
		Catalog:  catalog,
		Resolver: NewServiceResolver(cfg, logger),
		Aggregator: &CompanyAggregator{
			Workers:   workers,
			Evaluator: evaluator,
			Logger:    logger,
		},
		Config: cfg,
		Logger: logger,
	}
}

// ResolveServiceToken implements Service.
func (s *DefaultAvailabilityService) ResolveServiceToken(token string, candidates []models.ServiceCatalogEntry) *models.ServiceCatalogEntry {
	return s.Resolver.ResolveToken(token, candidates)
}

// CompanyAvailability implements Service.
func (s *DefaultAvailabilityService) CompanyAvailability(ctx context.Context, companyID, serviceType, date, slotLabel string) (models.CompanyAvailability, error) {
	return s.Aggregator.Evaluate(ctx, companyID, serviceType, date, slotLabel)
}
