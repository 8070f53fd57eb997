package timerange

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidTimeMode    = errors.New("invalid time mode")
	ErrMissingCustomRange = errors.New("custom mode requires both start and end dates")
)

// Range is a publish-time window in epoch seconds, inclusive on both ends.
// Bounds are day-aligned in the machine's local timezone: Start is 00:00:00
// of the start day, End is 23:59:59 of the end day.
type Range struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Resolve maps a symbolic window ("1d", "3d", "7d", "1m", "1y") or "custom"
// to a concrete Range. Symbolic modes end today. Custom dates use DateLayout
// and are passed through without reordering, even when start is after end.
func Resolve(mode, customStart, customEnd string) (Range, error) {
	now := time.Now()
	var startDay, endDay time.Time

	switch mode {
	case "custom":
		if customStart == "" || customEnd == "" {
			return Range{}, ErrMissingCustomRange
		}
		var err error
		startDay, err = time.ParseInLocation(DateLayout, customStart, time.Local)
		if err != nil {
			return Range{}, fmt.Errorf("parse custom start %q: %w", customStart, err)
		}
		endDay, err = time.ParseInLocation(DateLayout, customEnd, time.Local)
		if err != nil {
			return Range{}, fmt.Errorf("parse custom end %q: %w", customEnd, err)
		}
	case "1d":
		startDay, endDay = now.AddDate(0, 0, -1), now
	case "3d":
		startDay, endDay = now.AddDate(0, 0, -3), now
	case "7d":
		startDay, endDay = now.AddDate(0, 0, -7), now
	case "1m":
		startDay, endDay = now.AddDate(0, -1, 0), now
	case "1y":
		startDay, endDay = now.AddDate(-1, 0, 0), now
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidTimeMode, mode)
	}

	return Range{
		Start: dayStart(startDay).Unix(),
		End:   dayEnd(endDay).Unix(),
	}, nil
}

// Modes lists the recognized symbolic modes, excluding "custom".
func Modes() []string {
	return []string{"1d", "3d", "7d", "1m", "1y"}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.Local)
}
