// File: database/repository/catalog/queries.go
package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"fixora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// idBatchSize caps the size of $in lookups so a long assigned-service list
// cannot produce one oversized query.
const idBatchSize = 10

func (repo *mongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.ServiceCatalogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ServiceCatalogEntry
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("catalog entry %q not found", id)
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &entry, nil
}

func (repo *mongoCatalogRepo) ListByCategory(ctx context.Context, categoryID string, activeOnly bool) ([]models.ServiceCatalogEntry, error) {
	filter := bson.M{"categoryId": categoryID}
	if activeOnly {
		filter["isActive"] = true
	}
	return repo.list(ctx, filter)
}

func (repo *mongoCatalogRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.ServiceCatalogEntry, error) {
	filter := bson.M{"companyId": companyID}
	if activeOnly {
		filter["isActive"] = true
	}
	return repo.list(ctx, filter)
}

func (repo *mongoCatalogRepo) ListByIDs(ctx context.Context, ids []string) ([]models.ServiceCatalogEntry, error) {
	byID := make(map[string]models.ServiceCatalogEntry, len(ids))

	for start := 0; start < len(ids); start += idBatchSize {
		end := start + idBatchSize
		if end > len(ids) {
			end = len(ids)
		}
		batch, err := repo.list(ctx, bson.M{"id": bson.M{"$in": ids[start:end]}})
		if err != nil {
			return nil, err
		}
		for _, entry := range batch {
			byID[entry.ID] = entry
		}
	}

	// Reassemble in request order so downstream tie-breaking stays stable.
	entries := make([]models.ServiceCatalogEntry, 0, len(byID))
	for _, id := range ids {
		if entry, ok := byID[id]; ok {
			entries = append(entries, entry)
			delete(byID, id)
		}
	}
	return entries, nil
}

func (repo *mongoCatalogRepo) list(ctx context.Context, filter bson.M) ([]models.ServiceCatalogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ServiceCatalogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding catalog entries: %w", err)
	}
	return entries, nil
}
