package models

// Availability statuses describing a company's ability to serve a request.
const (
	StatusAvailable       = "available"
	StatusAllBusy         = "all_busy"
	StatusNoWorkers       = "no_workers"
	StatusServiceDisabled = "service_disabled"
)

// MatchQuery describes one availability request. Exactly one scope applies,
// narrowest first: WorkerID, ServiceScopeIDs, CompanyID, CategoryID.
type MatchQuery struct {
	CategoryID           string   `json:"categoryId,omitempty"`
	ServiceScopeIDs      []string `json:"serviceScopeIds,omitempty"`
	WorkerID             string   `json:"workerId,omitempty"`
	CompanyID            string   `json:"companyId,omitempty"`
	Date                 string   `json:"date" binding:"required"` // "2006-01-02"
	SlotLabel            string   `json:"slotLabel" binding:"required"`
	ExcludedServiceNames []string `json:"excludedServiceNames,omitempty"`
}

// AvailabilityOffer is one priced, availability-checked catalog entry.
type AvailabilityOffer struct {
	ServiceID        string  `json:"serviceId"`
	ServiceName      string  `json:"serviceName"`
	CompanyID        string  `json:"companyId"`
	Price            float64 `json:"price"`
	Status           string  `json:"status"`
	AvailableWorkers int     `json:"availableWorkers"`
	TotalWorkers     int     `json:"totalWorkers"`
}

// OfferResult is the full answer to a MatchQuery. Verified is false when the
// engine fell back to the unfiltered candidate set because availability
// filtering eliminated everything.
type OfferResult struct {
	Offers   []AvailabilityOffer `json:"offers"`
	Verified bool                `json:"verified"`
}

// CompanyAvailability is the aggregator's company-level verdict, including the
// per-worker detail lines the app shows under the slot picker.
type CompanyAvailability struct {
	CompanyID        string   `json:"companyId"`
	ServiceType      string   `json:"serviceType"`
	Status           string   `json:"status"`
	AvailableWorkers int      `json:"availableWorkers"`
	TotalWorkers     int      `json:"totalWorkers"`
	Message          string   `json:"message"`
	WorkerDetails    []string `json:"workerDetails,omitempty"`
}
