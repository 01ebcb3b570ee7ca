package availability

import (
	"context"
	"time"

	bookingRepo "fixora/database/repository/booking"
	"fixora/models"
)

// WorkerEvaluator decides whether one worker can serve a request: schedule
// eligibility from the static profile, capacity from live booking counts.
type WorkerEvaluator struct {
	Bookings bookingRepo.BookingRepository
}

// IsScheduleEligible checks the static schedule only: the worker is active,
// works the weekday of date, and the slot fits inside the working-hours
// envelope. A malformed date fails closed.
func IsScheduleEligible(worker models.WorkerProfile, date string, slot models.TimeSlot) bool {
	if !worker.IsActive {
		return false
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	if !worker.WorksOn(day.Weekday()) {
		return false
	}
	return slot.Within(worker.WorkingHours)
}

// CanPerform reports whether the worker's capability set covers the service
// type. A "*" entry declares universal capability. Comparison is exact
// normalized equality, same as every other name check.
func CanPerform(worker models.WorkerProfile, serviceType string) bool {
	want := Normalize(serviceType)
	for _, s := range worker.CapableServices {
		if s == models.UniversalCapability || Normalize(s) == want {
			return true
		}
	}
	return false
}

// HasCapacity checks the live booking count for the worker's
// (workerID, date, slotLabel) bucket against MaxBookingsPerSlot.
func (e *WorkerEvaluator) HasCapacity(ctx context.Context, worker models.WorkerProfile, date, slotLabel string) (bool, error) {
	count, err := e.Bookings.CountActive(ctx, worker.ID, date, slotLabel)
	if err != nil {
		return false, &LookupError{Kind: "booking", ID: worker.ID, Err: err}
	}
	return count < worker.MaxBookingsPerSlot, nil
}

// IsAvailable combines all three checks. The slot must already be parsed;
// callers that fail to parse the label never reach this point.
func (e *WorkerEvaluator) IsAvailable(ctx context.Context, worker models.WorkerProfile, serviceType, date string, slot models.TimeSlot) (bool, error) {
	if !IsScheduleEligible(worker, date, slot) {
		return false, nil
	}
	if !CanPerform(worker, serviceType) {
		return false, nil
	}
	return e.HasCapacity(ctx, worker, date, slot.Label)
}
