// Package timeutil provides human-readable time formatting.
package timeutil

import (
	"fmt"
	"time"
)

// Relative renders how long ago past happened, relative to now:
// "just now" under a minute, then minutes, hours, days, weeks, and
// months. Bucket boundaries truncate (integer floor), so ten days ago
// reads "1 week ago".
func Relative(past, now time.Time) string {
	diff := now.Sub(past)
	mins := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%d min%s ago", mins, plural(mins))
	case hours < 24:
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case days < 7:
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	case days < 30:
		weeks := days / 7
		return fmt.Sprintf("%d week%s ago", weeks, plural(weeks))
	default:
		months := days / 30
		return fmt.Sprintf("%d month%s ago", months, plural(months))
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
