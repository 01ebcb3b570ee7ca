package models

import "time"

// UniversalCapability marks a worker who may perform any service type.
const UniversalCapability = "*"

// WorkingHours is a worker's daily envelope in minutes from midnight.
type WorkingHours struct {
	Start int `bson:"start" json:"start"` // e.g. 540 for 9:00 AM
	End   int `bson:"end" json:"end"`     // e.g. 1080 for 6:00 PM
}

// WorkerProfile describes one technician's static schedule and capability set.
type WorkerProfile struct {
	ID                 string       `bson:"id" json:"id"`
	CompanyID          string       `bson:"companyId" json:"companyId"`
	Name               string       `bson:"name" json:"name"`
	CapableServices    []string     `bson:"capableServices" json:"capableServices"`
	IsActive           bool         `bson:"isActive" json:"isActive"`
	WorkingHours       WorkingHours `bson:"workingHours" json:"workingHours"`
	WorkingDays        []string     `bson:"workingDays" json:"workingDays"` // e.g. "Monday"
	MaxBookingsPerSlot int          `bson:"maxBookingsPerSlot" json:"maxBookingsPerSlot"`

	// AssignedServices holds the worker's service references as maintained by
	// the company's own tooling: a mix of catalog ids, legacy keys and plain
	// titles. They are resolved to canonical entries at query time.
	AssignedServices []string `bson:"assignedServices,omitempty" json:"assignedServices,omitempty"`
}

// WorksOn reports whether the worker's schedule includes the given weekday.
func (w WorkerProfile) WorksOn(day time.Weekday) bool {
	for _, d := range w.WorkingDays {
		if d == day.String() {
			return true
		}
	}
	return false
}
