package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelative(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"under a minute", 45 * time.Second, "just now"},
		{"zero", 0, "just now"},
		{"one minute", time.Minute, "1 min ago"},
		{"five minutes", 5 * time.Minute, "5 mins ago"},
		{"fifty-nine minutes", 59 * time.Minute, "59 mins ago"},
		{"exactly one hour", time.Hour, "1 hour ago"},
		{"two hours", 2 * time.Hour, "2 hours ago"},
		{"twenty-three hours", 23 * time.Hour, "23 hours ago"},
		{"exactly one day", 24 * time.Hour, "1 day ago"},
		{"six days", 6 * 24 * time.Hour, "6 days ago"},
		{"exactly one week", 7 * 24 * time.Hour, "1 week ago"},
		{"ten days floors to one week", 10 * 24 * time.Hour, "1 week ago"},
		{"twenty-nine days", 29 * 24 * time.Hour, "4 weeks ago"},
		{"thirty days", 30 * 24 * time.Hour, "1 month ago"},
		{"ninety days", 90 * 24 * time.Hour, "3 months ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relative(now.Add(-tt.ago), now))
		})
	}
}

func TestRelative_TruncatesPartialUnits(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 90 seconds is still 1 min, not 2.
	assert.Equal(t, "1 min ago", Relative(now.Add(-90*time.Second), now))
	// 13 days is 1 week, not 2.
	assert.Equal(t, "1 week ago", Relative(now.Add(-13*24*time.Hour), now))
}
