package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneClock(t *testing.T) {
	loc, err := time.LoadLocation("Pacific/Honolulu")
	require.NoError(t, err)

	// Thursday 2026-03-12 05:30 UTC is Wednesday 2026-03-11 19:30 in Honolulu.
	now := time.Date(2026, 3, 12, 5, 30, 0, 0, time.UTC)

	t.Run("Dates follow the reference zone", func(t *testing.T) {
		c := NewZoneClock(loc, time.Sunday, func() time.Time { return now })

		assert.Equal(t, "2026-03-11", c.Today())
		assert.Equal(t, "2026-03-10", c.Yesterday())
		assert.Equal(t, "2026-03-12", c.Tomorrow())
		assert.Equal(t, "2026-03-08", c.WeekStart())
	})

	t.Run("Week start honours the first weekday", func(t *testing.T) {
		c := NewZoneClock(loc, time.Monday, func() time.Time { return now })
		assert.Equal(t, "2026-03-09", c.WeekStart())

		c = NewZoneClock(loc, time.Wednesday, func() time.Time { return now })
		assert.Equal(t, "2026-03-11", c.WeekStart())
	})

	t.Run("UTC fallback", func(t *testing.T) {
		c := NewZoneClock(nil, time.Sunday, func() time.Time { return now })
		assert.Equal(t, "2026-03-12", c.Today())
	})
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	d, err = ParseWeekday(" Sun ")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	_, err = ParseWeekday("funday")
	assert.Error(t, err)
}
