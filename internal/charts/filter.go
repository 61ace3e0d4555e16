package charts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidRange = errors.New("invalid date range")

// DateRange is an inclusive window. A range with either bound unset does not filter.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Enabled reports whether both bounds are set.
func (r DateRange) Enabled() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Contains reports start <= t <= end.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ParseDateRange parses YYYY-MM-DD bounds at midnight in loc. Empty bounds are
// allowed and leave the range disabled. A reversed range is kept as is and
// matches nothing.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}
	var r DateRange
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if start != "" {
		t, err := time.ParseInLocation("2006-01-02", start, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: start %q", ErrInvalidRange, start)
		}
		r.Start = t
	}
	if end != "" {
		t, err := time.ParseInLocation("2006-01-02", end, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: end %q", ErrInvalidRange, end)
		}
		r.End = t
	}
	return r, nil
}

// FilterByRange keeps the records whose timestamp falls inside r, preserving
// their order. The input slice is never modified; when r is disabled the
// input is returned as is.
func FilterByRange[T any](records []T, at func(T) time.Time, r DateRange) []T {
	if !r.Enabled() {
		return records
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if r.Contains(at(rec)) {
			out = append(out, rec)
		}
	}
	return out
}

// DropUndated removes records with a zero timestamp and reports how many
// were removed.
func DropUndated[T any](records []T, at func(T) time.Time) ([]T, int) {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if !at(rec).IsZero() {
			out = append(out, rec)
		}
	}
	return out, len(records) - len(out)
}
