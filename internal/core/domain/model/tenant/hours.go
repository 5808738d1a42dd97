package tenant

import (
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// DayHours describes one weekday's opening window in minutes from midnight.
// A Closed day ignores the window entirely.
type DayHours struct {
	OpenMinute  int
	CloseMinute int
	Closed      bool
}

// NewDayHours creates an opening window for a weekday.
// The window must satisfy 0 <= open < close <= 1440.
func NewDayHours(openMinute, closeMinute int) (DayHours, error) {
	if openMinute < 0 || closeMinute > minutesPerDay || openMinute >= closeMinute {
		return DayHours{}, errs.NewValueIsInvalidErrorWithCause(
			"day hours",
			fmt.Errorf("window %d-%d is not within a day", openMinute, closeMinute),
		)
	}
	return DayHours{OpenMinute: openMinute, CloseMinute: closeMinute}, nil
}

// ClosedDay returns a window marking the whole day as closed.
func ClosedDay() DayHours {
	return DayHours{Closed: true}
}

// Contains reports whether the given minute of the day falls inside the
// window. The close minute is exclusive.
func (d DayHours) Contains(minute int) bool {
	if d.Closed {
		return false
	}
	return minute >= d.OpenMinute && minute < d.CloseMinute
}

// OperatingHours is a tenant's weekly schedule indexed by time.Weekday.
// The zero value is open around the clock every day, so tenants that never
// configure a schedule are treated as always open.
type OperatingHours struct {
	days       [7]DayHours
	configured [7]bool
}

// SetDay configures the opening window for one weekday.
func (h *OperatingHours) SetDay(day time.Weekday, hours DayHours) {
	h.days[day] = hours
	h.configured[day] = true
}

// ConfiguredDay returns the explicitly configured window for a weekday and
// whether one was ever set.
func (h OperatingHours) ConfiguredDay(day time.Weekday) (DayHours, bool) {
	return h.days[day], h.configured[day]
}

// Day returns the opening window for a weekday.
func (h OperatingHours) Day(day time.Weekday) DayHours {
	if !h.configured[day] {
		return DayHours{OpenMinute: 0, CloseMinute: minutesPerDay}
	}
	return h.days[day]
}

// IsOpenAt reports whether the schedule is open at the given instant.
func (h OperatingHours) IsOpenAt(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()
	return h.Day(t.Weekday()).Contains(minute)
}
