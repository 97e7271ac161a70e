package clock

import (
	"fmt"
	"time"
)

// Clock supplies the current time. Services take a Clock so the time-based
// booking rules can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by time.Now.
func System() Clock {
	return systemClock{}
}

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (f fixedClock) Now() time.Time {
	return f.t
}

// HourStart truncates t down to the start of its containing wall-clock
// hour, e.g. 19:34:27 becomes 19:00:00. Truncation happens in t's own
// location so zones with non-whole-hour offsets still land on :00.
func HourStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// FormatLong renders a timestamp in the long human-readable form used in
// notification messages, e.g. "day 01 of June, at 19:00h".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("day %02d of %s, at %s", t.Day(), t.Month().String(), t.Format("15:04")+"h")
}
