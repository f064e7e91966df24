package config

// Tournament holds the scheduling configuration for a single tournament.
// The external layer (CLI, host service) fills it in; the engine only reads it.
type Tournament struct {
	GroupSize       int
	NumCourts       int
	AvgMatchMinutes int
	HoursPerDay     int
	NumDays         int
	AdvanceCount    int
	WildcardCount   int
}
