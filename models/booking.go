package models

import "time"

// Booking lifecycle states. Only assigned and started bookings hold capacity.
const (
	BookingStatusPending   = "pending"
	BookingStatusAssigned  = "assigned"
	BookingStatusStarted   = "started"
	BookingStatusCompleted = "completed"
	BookingStatusRejected  = "rejected"
	BookingStatusExpired   = "expired"
)

// ActiveBookingStatuses are the states that count against worker capacity.
var ActiveBookingStatuses = []string{BookingStatusAssigned, BookingStatusStarted}

// BookingRecord represents one booking as stored by the external booking
// collaborator. A record occupies exactly one (workerId, date, slotLabel)
// capacity bucket.
type BookingRecord struct {
	ID        string    `bson:"id" json:"id"`
	WorkerID  string    `bson:"workerId" json:"workerId"`
	CompanyID string    `bson:"companyId" json:"companyId"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	SlotLabel string    `bson:"slotLabel" json:"slotLabel"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
}

// IsActive reports whether the booking currently holds capacity.
func (b BookingRecord) IsActive() bool {
	return b.Status == BookingStatusAssigned || b.Status == BookingStatusStarted
}
