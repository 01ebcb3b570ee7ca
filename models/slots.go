package models

// TimeSlot is a named booking window with half-open [Start, End) semantics,
// both in minutes from midnight. The label (e.g. "9:00 AM - 11:00 AM") is the
// key bookings are bucketed under and is never re-spelled by the engine.
type TimeSlot struct {
	Label string `bson:"label" json:"label"`
	Start int    `bson:"start" json:"start"` // e.g. 540 for 9:00 AM
	End   int    `bson:"end" json:"end"`     // e.g. 660 for 11:00 AM
}

// Within reports whether the slot fits entirely inside the given envelope.
func (t TimeSlot) Within(h WorkingHours) bool {
	return t.Start >= h.Start && t.End <= h.End
}
