package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time, loc *time.Location) Clock {
	return Clock{Now: func() time.Time { return t }, Location: loc}
}

func TestClock_BasicWindows(t *testing.T) {
	clock := fixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), time.UTC)

	assert.Equal(t, "2026-03-01", clock.Today())
	assert.Equal(t, "2026-02-28", clock.Yesterday())
	assert.Equal(t, DateWindow{From: "2026-03-01", To: "2026-03-08"}, clock.Upcoming())
	assert.Equal(t, DateWindow{From: "2026-03-01", To: "2026-03-31"}, clock.TeamUpcoming())
	assert.Equal(t, DateWindow{From: "2026-03-01", To: "2026-03-01"}, clock.TodayWindow())
}

func TestClock_OlderCandidates(t *testing.T) {
	clock := fixedClock(time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC), time.UTC)

	got := clock.OlderCandidates()
	require.Len(t, got, OlderCandidateDays)
	assert.Equal(t, "2026-01-08", got[0])
	assert.Equal(t, "2025-12-27", got[len(got)-1])

	assert.Equal(t, []string{"2026-01-08", "2026-01-07", "2026-01-06"}, clock.OlderDays(3))
	assert.Len(t, clock.OlderDays(0), 1)
	assert.Len(t, clock.OlderDays(99), OlderCandidateDays)
}

func TestClock_AnchorsToConfiguredLocation(t *testing.T) {
	// 23:30 UTC is already the next day in Jakarta.
	instant := time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC)
	jakarta := time.FixedZone("WIB", 7*60*60)

	assert.Equal(t, "2026-10-19", fixedClock(instant, time.UTC).Today())
	assert.Equal(t, "2026-10-20", fixedClock(instant, jakarta).Today())
}

func TestClock_DSTDoesNotSkipDays(t *testing.T) {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Clocks go back on 2026-10-25; component math keeps consecutive dates.
	clock := fixedClock(time.Date(2026, 10, 26, 0, 30, 0, 0, loc), loc)
	assert.Equal(t, "2026-10-25", clock.Yesterday())
	assert.Equal(t, "2026-10-24", clock.OlderCandidates()[0])
}
