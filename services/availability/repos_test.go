package availability

import (
	"context"
	"errors"

	"fixora/models"
)

// In-memory repositories backing the engine tests.

type fakeCatalogRepo struct {
	entries       []models.ServiceCatalogEntry
	err           error
	errByCategory map[string]error
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, id string) (*models.ServiceCatalogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.entries {
		if f.entries[i].ID == id {
			return &f.entries[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeCatalogRepo) ListByCategory(_ context.Context, categoryID string, activeOnly bool) ([]models.ServiceCatalogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err, ok := f.errByCategory[categoryID]; ok {
		return nil, err
	}
	var out []models.ServiceCatalogEntry
	for _, e := range f.entries {
		if e.CategoryID == categoryID && (!activeOnly || e.IsActive) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListByCompany(_ context.Context, companyID string, activeOnly bool) ([]models.ServiceCatalogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ServiceCatalogEntry
	for _, e := range f.entries {
		if e.CompanyID == companyID && (!activeOnly || e.IsActive) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) ListByIDs(_ context.Context, ids []string) ([]models.ServiceCatalogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ServiceCatalogEntry
	for _, id := range ids {
		for _, e := range f.entries {
			if e.ID == id {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

type fakeWorkerRepo struct {
	workers      []models.WorkerProfile
	err          error
	errByCompany map[string]error
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (*models.WorkerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.workers {
		if f.workers[i].ID == id {
			return &f.workers[i], nil
		}
	}
	return nil, errors.New("worker not found")
}

func (f *fakeWorkerRepo) ListByCompany(_ context.Context, companyID string, activeOnly bool) ([]models.WorkerProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err, ok := f.errByCompany[companyID]; ok {
		return nil, err
	}
	var out []models.WorkerProfile
	for _, w := range f.workers {
		if w.CompanyID == companyID && (!activeOnly || w.IsActive) {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings    []models.BookingRecord
	err         error
	errByWorker map[string]error
}

func (f *fakeBookingRepo) ListActive(_ context.Context, workerID, date, slotLabel string) ([]models.BookingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err, ok := f.errByWorker[workerID]; ok {
		return nil, err
	}
	var out []models.BookingRecord
	for _, b := range f.bookings {
		if b.WorkerID == workerID && b.Date == date && b.SlotLabel == slotLabel && b.IsActive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountActive(ctx context.Context, workerID, date, slotLabel string) (int, error) {
	active, err := f.ListActive(ctx, workerID, date, slotLabel)
	if err != nil {
		return 0, err
	}
	return len(active), nil
}

// allWeek covers every weekday, for workers whose schedule is not under test.
var allWeek = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdaysOnly() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
}
