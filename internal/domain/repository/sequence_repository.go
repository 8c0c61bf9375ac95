package repository

// SequenceRepository is the port for the per-prefix document counters.
type SequenceRepository interface {
	// Next atomically increments the counter of a prefix and returns the new
	// value. Increment and fetch happen in one store round trip, so two
	// concurrent callers can never observe the same value.
	Next(prefix string) (int64, error)
}
