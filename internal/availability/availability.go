// Package availability computes bookable consultation slots by diffing a
// business-hours window against busy intervals reported by the calendar.
package availability

import (
	"fmt"
	"time"
)

// Config describes the business-hours window slots are carved from.
type Config struct {
	StartHour   int // first bookable hour, 24h clock
	EndHour     int // window end, exclusive
	SlotMinutes int
}

// DefaultConfig is the observed production window: 9am-5pm, hour slots.
func DefaultConfig() Config {
	return Config{StartHour: 9, EndHour: 17, SlotMinutes: 60}
}

// Validate reports whether the window is usable.
func (c Config) Validate() error {
	if c.StartHour < 0 || c.EndHour > 24 || c.StartHour >= c.EndHour {
		return fmt.Errorf("availability: invalid window %d-%d", c.StartHour, c.EndHour)
	}
	if c.SlotMinutes <= 0 {
		return fmt.Errorf("availability: invalid slot length %d", c.SlotMinutes)
	}
	return nil
}

// BusyInterval is one occupied range reported by the calendar provider.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Slot is a bookable range within the business-hours window.
type Slot struct {
	Start time.Time
	End   time.Time
	Label string // display form, e.g. "9:00 AM"
}

// SlotsForDay partitions the configured window on day into fixed-length
// slots and returns those that do not overlap any busy interval, in
// chronological order. Overlap is half-open: a slot ending exactly when a
// busy interval starts does not conflict. Pure function; the caller decides
// which days are offerable at all (weekends etc.).
func SlotsForDay(day time.Time, cfg Config, busy []BusyInterval) ([]Slot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc := day.Location()
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), cfg.StartHour, 0, 0, 0, loc)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), cfg.EndHour, 0, 0, 0, loc)
	length := time.Duration(cfg.SlotMinutes) * time.Minute

	var slots []Slot
	for start := windowStart; !start.Add(length).After(windowEnd); start = start.Add(length) {
		end := start.Add(length)
		if overlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, Slot{
			Start: start,
			End:   end,
			Label: start.Format("3:04 PM"),
		})
	}
	return slots, nil
}

func overlapsAny(start, end time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}
