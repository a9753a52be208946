package match

import "time"

// OlderCandidateDays is how many single days before yesterday the older-results batch may visit.
const OlderCandidateDays = 13

// DateWindow is an inclusive pair of calendar dates in YYYY-MM-DD form.
type DateWindow struct {
	From string
	To   string
}

// Clock anchors all date math. Dates are computed on calendar-day components in
// Location, so DST shifts never move a date by one.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	t := now().In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DaysFromToday returns today shifted by n calendar days, formatted.
func (c Clock) DaysFromToday(n int) string {
	t := c.today()
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location()).Format(DateLayout)
}

func (c Clock) Today() string {
	return c.DaysFromToday(0)
}

func (c Clock) Yesterday() string {
	return c.DaysFromToday(-1)
}

// TodayWindow is [today, today].
func (c Clock) TodayWindow() DateWindow {
	today := c.Today()
	return DateWindow{From: today, To: today}
}

// Upcoming is [today, today+7].
func (c Clock) Upcoming() DateWindow {
	return DateWindow{From: c.Today(), To: c.DaysFromToday(7)}
}

// TeamUpcoming is [today, today+30].
func (c Clock) TeamUpcoming() DateWindow {
	return DateWindow{From: c.Today(), To: c.DaysFromToday(30)}
}

// OlderCandidates lists today-2 .. today-14, most recent first.
func (c Clock) OlderCandidates() []string {
	out := make([]string, 0, OlderCandidateDays)
	for i := 2; i < 2+OlderCandidateDays; i++ {
		out = append(out, c.DaysFromToday(-i))
	}
	return out
}

// OlderDays truncates OlderCandidates to at most n days, clamped to [1, 13].
func (c Clock) OlderDays(n int) []string {
	if n < 1 {
		n = 1
	}
	if n > OlderCandidateDays {
		n = OlderCandidateDays
	}
	return c.OlderCandidates()[:n]
}
