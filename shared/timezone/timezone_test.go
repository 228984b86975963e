package timezone_test

import (
	"pitch/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	if formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST"); formatted == "" {
		t.Error("Format() returned empty string")
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := timezone.ParseDate("2024-12-15")
	if err != nil {
		t.Fatalf("ParseDate() failed: %v", err)
	}

	if parsed.Location() != time.UTC || parsed.Day() != 15 || parsed.Month() != time.December {
		t.Errorf("unexpected parsed date %v", parsed)
	}

	for _, invalid := range []string{"", "2024-13-01", "15-12-2024", "2024-12-15T10:00:00Z", "2024-02-30"} {
		if _, err := timezone.ParseDate(invalid); err == nil {
			t.Errorf("expected error for %q", invalid)
		}
	}
}

func TestFormatDate(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*60*60+30*60)
	late := time.Date(2024, 12, 15, 23, 30, 0, 0, kolkata)

	if got := timezone.FormatDate(late); got != "2024-12-15" {
		t.Errorf("expected 2024-12-15, got %s", got)
	}
}
