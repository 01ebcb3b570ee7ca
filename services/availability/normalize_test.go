package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"AC Repair", "ac repair"},
		{"AC Repair - Split", "ac repair split"},
		{"  Deep   Clean!!  ", "deep clean"},
		{"Sofa & Carpet (Premium)", "sofa carpet premium"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"AC Repair - Split",
		"  Deep   Clean!!  ",
		"2 Seater Sofa Cleaning",
		"déjà-vu cleaning",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestStrictEquals_NeverFuzzes(t *testing.T) {
	// Distinct offerings whose names merely overlap must never collapse.
	assert.False(t, StrictEquals("2 Seater Sofa Cleaning", "4 Seater Sofa Cleaning"))
	assert.False(t, StrictEquals("AC Repair", "AC Repair - Split"))

	assert.True(t, StrictEquals("AC Repair", "ac  repair!"))
	assert.True(t, StrictEquals("Deep Clean", "DEEP CLEAN"))
}

func TestSignificantWords(t *testing.T) {
	words := significantWords("the sofa and rug deep clean", 3)
	assert.Equal(t, []string{"sofa", "deep", "clean"}, words)
}
