// File: database/repository/worker/interface.go
package workerRepo

import (
	"context"

	"fixora/database"
	"fixora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WorkerRepository defines read access to company technician profiles.
type WorkerRepository interface {
	// GetByID retrieves a worker by its unique ID.
	GetByID(ctx context.Context, id string) (*models.WorkerProfile, error)
	// ListByCompany retrieves a company's workers, optionally active only.
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.WorkerProfile, error)
}

type mongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo constructs a new MongoDB WorkerRepository.
func NewMongoWorkerRepo() WorkerRepository {
	db := database.MongoClient.Database("fixora")
	return &mongoWorkerRepo{
		coll: db.Collection("workers"),
	}
}
