package charts

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*60*60)

func TestBucketKey(t *testing.T) {
	ts := time.Date(2024, 3, 1, 13, 45, 0, 0, tokyo)

	assert.Equal(t, "2024-03-01", BucketKey(ts, Day))
	assert.Equal(t, "2024-W09", BucketKey(ts, Week))
	assert.Equal(t, "2024-03", BucketKey(ts, Month))
	assert.Equal(t, "2024", BucketKey(ts, Year))
}

func TestBucketKey_UsesTimestampCalendar(t *testing.T) {
	// 2024-02-29T20:00Z is already March 1st in Tokyo.
	utc := time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-02-29", BucketKey(utc, Day))
	assert.Equal(t, "2024-03-01", BucketKey(utc.In(tokyo), Day))
}

func TestBucketKey_ISOWeekAcrossYearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday in ISO week 1 of 2025.
	ts := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-W01", BucketKey(ts, Week))
}

func TestBucketKey_UnknownGranularityPanics(t *testing.T) {
	assert.Panics(t, func() {
		BucketKey(time.Now(), Granularity("hour"))
	})
}

func TestParseGranularityIn(t *testing.T) {
	g, err := ParseGranularityIn(" Month ", ShipmentGranularities)
	require.NoError(t, err)
	assert.Equal(t, Month, g)

	_, err = ParseGranularityIn("week", ShipmentGranularities)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownGranularity))

	_, err = ParseGranularityIn("year", PredictionGranularities)
	assert.ErrorIs(t, err, ErrUnknownGranularity)

	_, err = ParseGranularity("")
	assert.ErrorIs(t, err, ErrUnknownGranularity)
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "2024/3/1", FormatLabel("2024-03-01", Day))
	assert.Equal(t, "2024年第9週", FormatLabel("2024-W09", Week))
	assert.Equal(t, "2024年03月", FormatLabel("2024-03", Month))
	assert.Equal(t, "2024年", FormatLabel("2024", Year))
}

func TestKeyStart_RoundTripStaysInBucket(t *testing.T) {
	instants := []time.Time{
		time.Date(2023, 12, 31, 23, 59, 0, 0, tokyo),
		time.Date(2024, 1, 1, 0, 0, 0, 0, tokyo),
		time.Date(2024, 2, 29, 12, 0, 0, 0, tokyo),
		time.Date(2024, 12, 30, 8, 0, 0, 0, tokyo),
		time.Date(2021, 1, 3, 8, 0, 0, 0, tokyo),
	}

	for _, g := range []Granularity{Day, Week, Month, Year} {
		for _, ts := range instants {
			key := BucketKey(ts, g)
			start, err := KeyStart(key, g, tokyo)
			require.NoError(t, err, "key %s", key)
			assert.Equal(t, key, BucketKey(start, g), "granularity %s", g)
			assert.False(t, start.After(ts), "bucket start %v after %v", start, ts)
		}
	}
}

func TestKeyStart_WeekIsMonday(t *testing.T) {
	start, err := KeyStart("2024-W09", Week, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC), start)
}

func TestKeyStart_Invalid(t *testing.T) {
	_, err := KeyStart("2024-W60", Week, time.UTC)
	assert.Error(t, err)

	_, err = KeyStart("abcd", Year, time.UTC)
	assert.Error(t, err)

	_, err = KeyStart("2024", Granularity("hour"), time.UTC)
	assert.ErrorIs(t, err, ErrUnknownGranularity)
}
