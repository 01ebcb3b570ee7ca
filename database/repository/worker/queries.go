// File: database/repository/worker/queries.go
package workerRepo

import (
	"context"
	"fmt"
	"time"

	"fixora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoWorkerRepo) GetByID(ctx context.Context, id string) (*models.WorkerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var worker models.WorkerProfile
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&worker)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("worker %q not found", id)
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &worker, nil
}

func (repo *mongoWorkerRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]models.WorkerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"companyId": companyID}
	if activeOnly {
		filter["isActive"] = true
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.WorkerProfile
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("error decoding workers: %w", err)
	}
	return workers, nil
}
