package availability

import (
	"context"
	"fmt"
	"sync"

	workerRepo "fixora/database/repository/worker"
	"fixora/models"

	"go.uber.org/zap"
)

// CompanyAggregator combines per-worker availability into a company-level
// verdict used for both filtering and UI messaging.
type CompanyAggregator struct {
	Workers   workerRepo.WorkerRepository
	Evaluator *WorkerEvaluator
	Logger    *zap.Logger
}

// Evaluate runs the decision table for one company and service type:
//  1. no workers at all            -> no_workers
//  2. no worker capable            -> service_disabled ("service not offered")
//  3. capable but none available   -> all_busy
//  4. otherwise                    -> available
func (a *CompanyAggregator) Evaluate(ctx context.Context, companyID, serviceType, date, slotLabel string) (models.CompanyAvailability, error) {
	result := models.CompanyAvailability{
		CompanyID:   companyID,
		ServiceType: serviceType,
	}

	workers, err := a.Workers.ListByCompany(ctx, companyID, true)
	if err != nil {
		return result, &LookupError{Kind: "worker", ID: companyID, Err: err}
	}
	if len(workers) == 0 {
		result.Status = models.StatusNoWorkers
		result.Message = "No workers found"
		return result, nil
	}

	var capable []models.WorkerProfile
	for _, w := range workers {
		if CanPerform(w, serviceType) {
			capable = append(capable, w)
		}
	}
	if len(capable) == 0 {
		result.Status = models.StatusServiceDisabled
		result.Message = "service not offered"
		return result, nil
	}
	result.TotalWorkers = len(capable)

	// An unparseable slot label is never eligible for anyone: report every
	// capable worker as busy rather than erroring out.
	slot, parseErr := ParseSlotLabel(slotLabel)

	type workerVerdict struct {
		index     int
		name      string
		available bool
	}

	verdictCh := make(chan workerVerdict, len(capable))
	var wg sync.WaitGroup

	for i, w := range capable {
		wg.Add(1)
		go func(i int, w models.WorkerProfile) {
			defer wg.Done()
			if parseErr != nil {
				verdictCh <- workerVerdict{index: i, name: w.Name}
				return
			}
			ok, err := a.Evaluator.IsAvailable(ctx, w, serviceType, date, slot)
			if err != nil {
				// A failed capacity read excludes the worker, never the query.
				if a.Logger != nil {
					a.Logger.Warn("worker availability check failed, treating as busy",
						zap.String("workerID", w.ID), zap.Error(err))
				}
				ok = false
			}
			verdictCh <- workerVerdict{index: i, name: w.Name, available: ok}
		}(i, w)
	}

	wg.Wait()
	close(verdictCh)

	details := make([]string, len(capable))
	for v := range verdictCh {
		if v.available {
			result.AvailableWorkers++
			details[v.index] = fmt.Sprintf("%s: Available", v.name)
		} else {
			details[v.index] = fmt.Sprintf("%s: Busy", v.name)
		}
	}
	result.WorkerDetails = details

	if result.AvailableWorkers == 0 {
		result.Status = models.StatusAllBusy
		result.Message = fmt.Sprintf("All %d workers busy", result.TotalWorkers)
		return result, nil
	}

	result.Status = models.StatusAvailable
	if result.AvailableWorkers == 1 {
		result.Message = "1 worker available"
	} else {
		result.Message = fmt.Sprintf("%d workers available", result.AvailableWorkers)
	}
	return result, nil
}
