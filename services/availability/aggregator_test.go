package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixora/models"
)

func newAggregator(workers *fakeWorkerRepo, bookings *fakeBookingRepo) *CompanyAggregator {
	return &CompanyAggregator{
		Workers:   workers,
		Evaluator: &WorkerEvaluator{Bookings: bookings},
	}
}

func TestAggregator_NoWorkers(t *testing.T) {
	agg := newAggregator(&fakeWorkerRepo{}, &fakeBookingRepo{})

	verdict, err := agg.Evaluate(context.Background(), "comp-1", "Sofa Cleaning", monday, morningSlot)
	require.NoError(t, err)
	assert.Equal(t, models.StatusNoWorkers, verdict.Status)
	assert.Equal(t, 0, verdict.TotalWorkers)
}

func TestAggregator_ServiceDisabled(t *testing.T) {
	w := testWorker("w-1")
	w.CapableServices = []string{"AC Repair"}
	agg := newAggregator(&fakeWorkerRepo{workers: []models.WorkerProfile{w}}, &fakeBookingRepo{})

	verdict, err := agg.Evaluate(context.Background(), "comp-1", "Sofa Cleaning", monday, morningSlot)
	require.NoError(t, err)
	assert.Equal(t, models.StatusServiceDisabled, verdict.Status)
	assert.Equal(t, "service not offered", verdict.Message)
}

// Scenario: two capable workers, one blocked by an assigned booking in the
// exact requested slot, one free.
func TestAggregator_OneOfTwoAvailable(t *testing.T) {
	w1 := testWorker("w-1")
	w2 := testWorker("w-2")
	w2.Name = "Binta"
	bookings := &fakeBookingRepo{bookings: []models.BookingRecord{
		{ID: "b-1", WorkerID: "w-1", Date: monday, SlotLabel: morningSlot, Status: models.BookingStatusAssigned},
	}}
	agg := newAggregator(&fakeWorkerRepo{workers: []models.WorkerProfile{w1, w2}}, bookings)

	verdict, err := agg.Evaluate(context.Background(), "comp-1", "Sofa Cleaning", monday, morningSlot)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, verdict.Status)
	assert.Equal(t, 1, verdict.AvailableWorkers)
	assert.Equal(t, 2, verdict.TotalWorkers)
	assert.Equal(t, "1 worker available", verdict.Message)
	assert.Equal(t, []string{"Asha: Busy", "Binta: Available"}, verdict.WorkerDetails)
}

// Scenario: a Sunday request against a weekday-only schedule.
func TestAggregator_SundayRequest(t *testing.T) {
	w := testWorker("w-1")
	agg := newAggregator(&fakeWorkerRepo{workers: []models.WorkerProfile{w}}, &fakeBookingRepo{})

	verdict, err := agg.Evaluate(context.Background(), "comp-1", "Sofa Cleaning", sunday, morningSlot)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAllBusy, verdict.Status)
	assert.Equal(t, "All 1 workers busy", verdict.Message)
	assert.Equal(t, 0, verdict.AvailableWorkers)
}

// An unparseable slot label yields zero available workers, never an error.
func TestAggregator_MalformedSlotFailsClosed(t *testing.T) {
	w1 := testWorker("w-1")
	w2 := testWorker("w-2")
	agg := newAggregator(&fakeWorkerRepo{workers: []models.WorkerProfile{w1, w2}}, &fakeBookingRepo{})

	verdict, err := agg.Evaluate(context.Background(), "comp-1", "Sofa Cleaning", monday, "9:00 - 11:00")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAllBusy, verdict.Status)
	assert.Equal(t, 0, verdict.AvailableWorkers)
	assert.Equal(t, 2, verdict.TotalWorkers)
}

// A failed capacity read excludes the worker, not the query.
func TestAggregator_WorkerLookupFailureTreatedBusy(t *testing.T) {
	w1 := testWorker("w-1")
	w2 := testWorker("w-2")
	w2.Name = "Binta"
	bookings := &fakeBookingRepo{errByWorker: map[string]error{"w-1": assert.AnError}}
	agg := newAggregator(&fakeWorkerRepo{workers: []models.WorkerProfile{w1, w2}}, bookings)

	verdict, err := agg.Evaluate(context.Background(), "comp-1", "Sofa Cleaning", monday, morningSlot)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAvailable, verdict.Status)
	assert.Equal(t, 1, verdict.AvailableWorkers)
	assert.Equal(t, []string{"Asha: Busy", "Binta: Available"}, verdict.WorkerDetails)
}

func TestAggregator_CompanyLookupFailure(t *testing.T) {
	agg := newAggregator(&fakeWorkerRepo{errByCompany: map[string]error{"comp-1": assert.AnError}}, &fakeBookingRepo{})

	_, err := agg.Evaluate(context.Background(), "comp-1", "Sofa Cleaning", monday, morningSlot)
	require.Error(t, err)
	var le *LookupError
	assert.ErrorAs(t, err, &le)
	assert.Equal(t, "worker", le.Kind)
}
