package charts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Granularity is the bucket size used to group records on the time axis.
type Granularity string

const (
	Day   Granularity = "day"
	Week  Granularity = "week"
	Month Granularity = "month"
	Year  Granularity = "year"
)

var ErrUnknownGranularity = errors.New("unknown granularity")

// ShipmentGranularities are the bucket sizes offered by the shipment dashboard.
var ShipmentGranularities = []Granularity{Day, Month, Year}

// PredictionGranularities are the bucket sizes offered by the prediction view.
var PredictionGranularities = []Granularity{Day, Week, Month}

// ParseGranularity validates a raw group_by value against every known granularity.
func ParseGranularity(raw string) (Granularity, error) {
	return ParseGranularityIn(raw, []Granularity{Day, Week, Month, Year})
}

// ParseGranularityIn validates raw against the allowed set.
func ParseGranularityIn(raw string, allowed []Granularity) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(raw)))
	for _, a := range allowed {
		if g == a {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGranularity, raw)
}

// BucketKey maps t to the key of the bucket containing it, using t's own
// calendar (convert to the display location before calling).
//
//	day   -> 2024-03-01
//	week  -> 2024-W09 (ISO week)
//	month -> 2024-03
//	year  -> 2024
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case Day:
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	case Week:
		y, w := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", y, w)
	case Month:
		return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
	case Year:
		return fmt.Sprintf("%04d", t.Year())
	default:
		panic(fmt.Sprintf("charts: bucket key for unknown granularity %q", g))
	}
}

// KeyStart reconstructs the start instant of the bucket named by key in loc.
// Month and year buckets are anchored on day 1, week buckets on Monday.
func KeyStart(key string, g Granularity, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	switch g {
	case Day:
		return time.ParseInLocation("2006-01-02", key, loc)
	case Week:
		y, w, err := splitWeekKey(key)
		if err != nil {
			return time.Time{}, err
		}
		return isoWeekStart(y, w, loc), nil
	case Month:
		t, err := time.ParseInLocation("2006-01", key, loc)
		if err != nil {
			return time.Time{}, err
		}
		return t, nil
	case Year:
		y, err := strconv.Atoi(key)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid year key %q: %w", key, err)
		}
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownGranularity, g)
	}
}

// FormatLabel renders a bucket key for display.
func FormatLabel(key string, g Granularity) string {
	switch g {
	case Day:
		t, err := KeyStart(key, Day, time.UTC)
		if err != nil {
			return key
		}
		return t.Format("2006/1/2")
	case Week:
		y, w, err := splitWeekKey(key)
		if err != nil {
			return key
		}
		return fmt.Sprintf("%d年第%d週", y, w)
	case Month:
		y, m, ok := strings.Cut(key, "-")
		if !ok {
			return key
		}
		return fmt.Sprintf("%s年%s月", y, m)
	case Year:
		return key + "年"
	default:
		return key
	}
}

func splitWeekKey(key string) (int, int, error) {
	ys, ws, ok := strings.Cut(key, "-W")
	if !ok {
		return 0, 0, fmt.Errorf("invalid week key %q", key)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week key %q: %w", key, err)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w < 1 || w > 53 {
		return 0, 0, fmt.Errorf("invalid week key %q", key)
	}
	return y, w, nil
}

// isoWeekStart returns the Monday of ISO week w of year y.
func isoWeekStart(y, w int, loc *time.Location) time.Time {
	// Jan 4th always falls in ISO week 1.
	jan4 := time.Date(y, time.January, 4, 0, 0, 0, 0, loc)
	offset := (int(jan4.Weekday()) + 6) % 7
	week1 := jan4.AddDate(0, 0, -offset)
	return week1.AddDate(0, 0, (w-1)*7)
}
