package availability

// MatchConfig carries the engine's tunables. Thresholds live here rather than
// as literals so deployments can adjust them without a code change.
type MatchConfig struct {
	// OverlapThreshold is exclusive: a keyword-overlap match requires a ratio
	// strictly greater than this value.
	OverlapThreshold float64
	// KeywordFloor is the minimum word length (exclusive) for a word to count
	// toward keyword overlap. Short filler words carry no signal.
	KeywordFloor int
	// DefaultPrice is used when no catalog entry yields a usable price.
	DefaultPrice float64
	// MaxConcurrentChecks bounds the fan-out of per-company availability reads.
	MaxConcurrentChecks int
}

// DefaultMatchConfig returns the production defaults.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		OverlapThreshold:    0.6,
		KeywordFloor:        3,
		DefaultPrice:        500,
		MaxConcurrentChecks: 8,
	}
}
