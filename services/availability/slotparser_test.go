package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotLabel(t *testing.T) {
	slot, err := ParseSlotLabel("9:00 AM - 11:00 AM")
	require.NoError(t, err)
	assert.Equal(t, "9:00 AM - 11:00 AM", slot.Label)
	assert.Equal(t, 540, slot.Start)
	assert.Equal(t, 660, slot.End)
}

func TestParseSlotLabel_Afternoon(t *testing.T) {
	slot, err := ParseSlotLabel("1:30 PM - 3:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 810, slot.Start)
	assert.Equal(t, 900, slot.End)
}

func TestParseSlotLabel_MidnightAndNoon(t *testing.T) {
	slot, err := ParseSlotLabel("12:00 AM - 12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, 0, slot.Start)
	assert.Equal(t, 720, slot.End)
}

func TestParseSlotLabel_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		label string
	}{
		{"missing separator", "9:00 AM to 11:00 AM"},
		{"missing marker", "9:00 - 11:00"},
		{"bad marker", "9:00 XM - 11:00 AM"},
		{"non-numeric hour", "nine:00 AM - 11:00 AM"},
		{"non-numeric minute", "9:zero AM - 11:00 AM"},
		{"hour out of range", "13:00 AM - 2:00 PM"},
		{"minute out of range", "9:75 AM - 11:00 AM"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSlotLabel(tc.label)
			assert.Error(t, err)
		})
	}
}
