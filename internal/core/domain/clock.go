package domain

import (
	"fmt"
	"strings"
	"time"
)

const DefaultTimezone = "Pacific/Honolulu"

// Clock supplies calendar dates in the deployment's reference zone.
type Clock interface {
	Today() string
	Yesterday() string
	Tomorrow() string
	WeekStart() string
}

type ZoneClock struct {
	loc       *time.Location
	weekStart time.Weekday
	now       func() time.Time
}

func NewZoneClock(loc *time.Location, weekStart time.Weekday, now func() time.Time) *ZoneClock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ZoneClock{loc: loc, weekStart: weekStart, now: now}
}

func (c *ZoneClock) local() time.Time {
	t := c.now().In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

func (c *ZoneClock) Today() string {
	return c.local().Format(DateLayout)
}

func (c *ZoneClock) Yesterday() string {
	return c.local().AddDate(0, 0, -1).Format(DateLayout)
}

func (c *ZoneClock) Tomorrow() string {
	return c.local().AddDate(0, 0, 1).Format(DateLayout)
}

func (c *ZoneClock) WeekStart() string {
	day := c.local()
	offset := (int(day.Weekday()) - int(c.weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset).Format(DateLayout)
}

func (c *ZoneClock) Location() *time.Location {
	return c.loc
}

func ParseWeekday(s string) (time.Weekday, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if want == name || want == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
