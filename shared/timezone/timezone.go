// Package timezone holds the application location loaded from APP_TIMEZONE.
//
// Timestamps (booking creation, token issue times) are produced in the application
// location. Calendar days are location free and always handled as UTC midnights.
package timezone

import (
	"pitch/config"
	"pitch/shared/constant"
	"time"

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
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}

// ParseDate parses a YYYY-MM-DD calendar day as a UTC midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.ISODateFormat, value, time.UTC)
}

// FormatDate renders the calendar day of t as YYYY-MM-DD without shifting it between zones.
func FormatDate(t time.Time) string {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format(constant.ISODateFormat)
}
