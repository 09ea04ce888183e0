package timezone

import (
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns midnight of the current day in the application timezone.
func Today() time.Time {
	return DateOf(Now())
}

// DateOf drops the time-of-day of t, keeping its calendar day in the application timezone.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}

	y, m, d := t.In(GetLocation()).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, GetLocation())
}

// Date builds a day in the application timezone.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, GetLocation())
}

// ParseDate parses a YYYY-MM-DD day in the application timezone. An empty
// value yields the zero time, which callers treat as "unset".
func ParseDate(value string) (time.Time, error) {
	if value == constant.Empty {
		return time.Time{}, nil
	}

	return time.ParseInLocation(constant.DateFormat, value, GetLocation())
}

// FormatDate renders a day as YYYY-MM-DD, or an empty string when unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return t.In(GetLocation()).Format(constant.DateFormat)
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}
