package attendance

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DailyGoal is the worked time after which the day counts as complete.
	DailyGoal = 9 * time.Hour
	dayLength = 24 * time.Hour
)

// Elapsed returns the worked time of a record at instant now. Open records
// count up to now, closed ones are frozen. The result is whole seconds and
// never negative.
func Elapsed(in, out *time.Time, open bool, now time.Time) time.Duration {
	var d time.Duration
	switch {
	case in == nil:
		return 0
	case open:
		d = now.Sub(*in)
	case out != nil:
		d = out.Sub(*in)
	default:
		return 0
	}
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// FormatDuration renders "{h}h {m}m", or "{m}m" below one hour.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int64(d / time.Hour)
	m := int64((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatPreciseDuration renders "{h}h {m}m {s}s" without zero parts.
func FormatPreciseDuration(d time.Duration) string {
	if d < 0 {
		return "--"
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	parts := make([]string, 0, 3)
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}

// Progress is the share of a 24h day covered by d, in percent.
func Progress(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	p := float64(d) / float64(dayLength) * 100
	if p > 100 {
		return 100
	}
	return p
}

// DayKey identifies the calendar day of t in t's location.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
