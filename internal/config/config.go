package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidGroupSize      = errors.New("group size must be a positive integer")
	ErrInvalidCourtCount     = errors.New("court count must be a positive integer")
	ErrInvalidMatchDuration  = errors.New("average match duration must be a positive number of minutes")
	ErrNegativeAdvanceCount  = errors.New("advance count must not be negative")
	ErrNegativeWildcardCount = errors.New("wildcard count must not be negative")
)

// Defaults for a typical one-day beach tournament.
const (
	DefaultGroupSize       = 5
	DefaultNumCourts       = 2
	DefaultAvgMatchMinutes = 25
	DefaultHoursPerDay     = 8
	DefaultNumDays         = 1
	DefaultAdvanceCount    = 2
	DefaultWildcardCount   = 0
)

// Load reads tournament configuration from environment variables and .env file,
// falling back to defaults for anything unset.
func Load() Tournament {
	err := godotenv.Load()
	if err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}

	// A helper function to get an integer env var with a default.
	getEnvInt := func(key string, fallback int) int {
		value, ok := os.LookupEnv(key)
		if !ok {
			return fallback
		}
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Fatalf("Error: environment variable %s must be an integer, got %q", key, value)
		}
		return parsed
	}

	cfg := Tournament{
		GroupSize:       getEnvInt("GROUP_SIZE", DefaultGroupSize),
		NumCourts:       getEnvInt("NUM_COURTS", DefaultNumCourts),
		AvgMatchMinutes: getEnvInt("AVG_MATCH_MINUTES", DefaultAvgMatchMinutes),
		HoursPerDay:     getEnvInt("HOURS_PER_DAY", DefaultHoursPerDay),
		NumDays:         getEnvInt("NUM_DAYS", DefaultNumDays),
		AdvanceCount:    getEnvInt("ADVANCE_COUNT", DefaultAdvanceCount),
		WildcardCount:   getEnvInt("WILDCARD_COUNT", DefaultWildcardCount),
	}
	return cfg
}

// Validate checks the configuration before any scheduling work starts.
// It fails fast; nothing gets partially scheduled on a bad config.
func (t Tournament) Validate() error {
	if t.GroupSize < 1 {
		return ErrInvalidGroupSize
	}
	if t.NumCourts < 1 {
		return ErrInvalidCourtCount
	}
	if t.AvgMatchMinutes < 1 {
		return ErrInvalidMatchDuration
	}
	if t.AdvanceCount < 0 {
		return ErrNegativeAdvanceCount
	}
	if t.WildcardCount < 0 {
		return ErrNegativeWildcardCount
	}
	return nil
}
