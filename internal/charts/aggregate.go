package charts

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects how measures falling into the same bucket are combined.
type Mode int

const (
	Sum Mode = iota
	Average
)

func (m Mode) String() string {
	if m == Average {
		return "average"
	}
	return "sum"
}

// SeriesFunc names the series a record contributes to.
type SeriesFunc[T any] func(T) string

// SingleSeries puts every record into one constant series.
func SingleSeries[T any](name string) SeriesFunc[T] {
	return func(T) string { return name }
}

// BySeries reads the series discriminator from the record itself (vendor, coop...).
func BySeries[T any](fn func(T) string) SeriesFunc[T] {
	return SeriesFunc[T](fn)
}

// Spec describes how to fold one record type into buckets.
type Spec[T any] struct {
	At       func(T) time.Time
	Series   SeriesFunc[T]
	Measure  func(T) decimal.Decimal
	Location *time.Location
}

type cell struct {
	sum   decimal.Decimal
	count int64
}

// Buckets holds per-series, per-bucket accumulators. Only buckets that
// received at least one record exist, so averages never divide by zero.
type Buckets struct {
	granularity Granularity
	mode        Mode
	series      map[string]map[string]*cell
}

// NewBuckets returns an empty accumulator set.
func NewBuckets(g Granularity, mode Mode) *Buckets {
	return &Buckets{
		granularity: g,
		mode:        mode,
		series:      make(map[string]map[string]*cell),
	}
}

func (b *Buckets) Granularity() Granularity { return b.granularity }
func (b *Buckets) Mode() Mode               { return b.mode }

func (b *Buckets) add(series, key string, v decimal.Decimal) {
	m, ok := b.series[series]
	if !ok {
		m = make(map[string]*cell)
		b.series[series] = m
	}
	c, ok := m[key]
	if !ok {
		c = &cell{}
		m[key] = c
	}
	c.sum = c.sum.Add(v)
	c.count++
}

// Value returns the accumulated value of series at key: the sum in Sum mode,
// the rounded mean in Average mode. Absent buckets read as 0.
func (b *Buckets) Value(series, key string) float64 {
	c, ok := b.series[series][key]
	if !ok || c.count == 0 {
		return 0
	}
	if b.mode == Average {
		return c.sum.Div(decimal.NewFromInt(c.count)).Round(0).InexactFloat64()
	}
	return c.sum.InexactFloat64()
}

// Count returns how many records landed in the bucket.
func (b *Buckets) Count(series, key string) int64 {
	if c, ok := b.series[series][key]; ok {
		return c.count
	}
	return 0
}

// Total returns the sum of series over all of its buckets.
func (b *Buckets) Total(series string) float64 {
	total := decimal.Zero
	for _, c := range b.series[series] {
		total = total.Add(c.sum)
	}
	return total.InexactFloat64()
}

// Series returns the names of every series holding data, sorted.
func (b *Buckets) Series() []string {
	names := make([]string, 0, len(b.series))
	for name := range b.series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the union of bucket keys over all series, unordered.
func (b *Buckets) Keys() []string {
	seen := make(map[string]struct{})
	keys := make([]string, 0)
	for _, m := range b.series {
		for k := range m {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}

// Accumulate folds records into b and returns how many were discarded for
// carrying no usable timestamp.
func Accumulate[T any](b *Buckets, records []T, spec Spec[T]) int {
	discarded := 0
	for _, rec := range records {
		t := spec.At(rec)
		if t.IsZero() {
			discarded++
			continue
		}
		if spec.Location != nil {
			t = t.In(spec.Location)
		}
		b.add(spec.Series(rec), BucketKey(t, b.granularity), spec.Measure(rec))
	}
	return discarded
}

// Aggregate folds records into a fresh set of buckets.
func Aggregate[T any](records []T, g Granularity, mode Mode, spec Spec[T]) (*Buckets, int) {
	b := NewBuckets(g, mode)
	discarded := Accumulate(b, records, spec)
	return b, discarded
}
