package availability

import (
	"fmt"
	"strconv"
	"strings"

	"fixora/models"
)

// slotSeparator joins the two halves of a slot label. Labels are opaque keys
// elsewhere in the system, so no spelling normalization happens here.
const slotSeparator = " - "

// ParseSlotLabel converts a label such as "9:00 AM - 11:00 AM" into a
// comparable TimeSlot. Callers must treat a parse failure as fail-closed:
// an unparseable slot is never eligible for anyone.
func ParseSlotLabel(label string) (models.TimeSlot, error) {
	parts := strings.Split(label, slotSeparator)
	if len(parts) != 2 {
		return models.TimeSlot{}, fmt.Errorf("slot label %q missing %q separator", label, slotSeparator)
	}

	start, err := parseClockTime(parts[0])
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("slot label %q: %w", label, err)
	}
	end, err := parseClockTime(parts[1])
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("slot label %q: %w", label, err)
	}

	return models.TimeSlot{Label: label, Start: start, End: end}, nil
}

// parseClockTime converts a 12-hour clock string like "9:00 AM" to minutes
// from midnight.
func parseClockTime(s string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("clock time %q missing AM/PM marker", s)
	}

	marker := strings.ToUpper(fields[1])
	if marker != "AM" && marker != "PM" {
		return 0, fmt.Errorf("clock time %q has invalid marker %q", s, fields[1])
	}

	hm := strings.Split(fields[0], ":")
	if len(hm) != 2 {
		return 0, fmt.Errorf("clock time %q is not in h:mm form", s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, fmt.Errorf("clock time %q has non-numeric hour", s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, fmt.Errorf("clock time %q has non-numeric minute", s)
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	// 12 AM is midnight, 12 PM is noon.
	if hour == 12 {
		hour = 0
	}
	if marker == "PM" {
		hour += 12
	}
	return hour*60 + minute, nil
}
