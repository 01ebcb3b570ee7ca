// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"fixora/database"
	"fixora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines read access to booking records. Writes are owned
// by the booking collaborator; the engine only counts capacity.
type BookingRepository interface {
	// ListActive returns the bookings holding capacity in the given
	// (workerID, date, slotLabel) bucket, i.e. status assigned or started.
	ListActive(ctx context.Context, workerID, date, slotLabel string) ([]models.BookingRecord, error)
	// CountActive returns the number of such bookings.
	CountActive(ctx context.Context, workerID, date, slotLabel string) (int, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("fixora")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
