// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"fixora/database"
	"fixora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository defines read access to the canonical service catalog.
// The catalog is owned by external admin tooling; the engine never writes it.
type CatalogRepository interface {
	// GetByID retrieves a catalog entry by its primary document id.
	GetByID(ctx context.Context, id string) (*models.ServiceCatalogEntry, error)
	// ListByCategory retrieves entries for a category, optionally active only.
	ListByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]models.ServiceCatalogEntry, error)
	// ListByCompany retrieves entries owned by a company, optionally active only.
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.ServiceCatalogEntry, error)
	// ListByIDs retrieves entries whose primary id is in ids. Results follow
	// the order of ids; unknown ids are skipped silently.
	ListByIDs(ctx context.Context, ids []string) ([]models.ServiceCatalogEntry, error)
}

type mongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new MongoDB CatalogRepository.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("fixora")
	return &mongoCatalogRepo{
		coll: db.Collection("services"),
	}
}
