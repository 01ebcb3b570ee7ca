// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fixora/models"

	"go.mongodb.org/mongo-driver/bson"
)

func activeBucketFilter(workerID, date, slotLabel string) bson.M {
	return bson.M{
		"workerId":  workerID,
		"date":      date,
		"slotLabel": slotLabel,
		"status":    bson.M{"$in": models.ActiveBookingStatuses},
	}
}

func (repo *mongoBookingRepo) ListActive(ctx context.Context, workerID, date, slotLabel string) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, activeBucketFilter(workerID, date, slotLabel))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.BookingRecord
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *mongoBookingRepo) CountActive(ctx context.Context, workerID, date, slotLabel string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, activeBucketFilter(workerID, date, slotLabel))
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return int(count), nil
}
