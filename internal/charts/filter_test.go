package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2024-03-01", "2024-03-31", tokyo)
	require.NoError(t, err)
	assert.True(t, r.Enabled())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, tokyo), r.Start)

	r, err = ParseDateRange("2024-03-01", "", tokyo)
	require.NoError(t, err)
	assert.False(t, r.Enabled())

	_, err = ParseDateRange("2024/03/01", "2024-03-31", tokyo)
	assert.ErrorIs(t, err, ErrInvalidRange)

	r, err = ParseDateRange("2024-03-31", "2024-03-01", tokyo)
	require.NoError(t, err)
	assert.True(t, r.Enabled())
}

func TestFilterByRange_ReversedMatchesNothing(t *testing.T) {
	r, err := ParseDateRange("2024-03-05", "2024-03-01", tokyo)
	require.NoError(t, err)

	records := []shipment{
		{at: day(2024, 3, 1), vendor: "a"},
		{at: day(2024, 3, 3), vendor: "b"},
		{at: day(2024, 3, 5), vendor: "c"},
	}

	got := FilterByRange(records, func(s shipment) time.Time { return s.at }, r)
	assert.Empty(t, got)
}

func TestDropUndated(t *testing.T) {
	records := []shipment{
		{at: day(2024, 3, 1), vendor: "a"},
		{vendor: "undated"},
		{at: day(2024, 3, 2), vendor: "b"},
	}

	got, dropped := DropUndated(records, func(s shipment) time.Time { return s.at })
	assert.Equal(t, 1, dropped)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].vendor)
	assert.Equal(t, "b", got[1].vendor)
}

func TestFilterByRange_Inclusive(t *testing.T) {
	r, err := ParseDateRange("2024-03-02", "2024-03-04", tokyo)
	require.NoError(t, err)

	records := []shipment{
		{at: day(2024, 3, 1), vendor: "before"},
		{at: day(2024, 3, 2), vendor: "start"},
		{at: day(2024, 3, 3), vendor: "middle"},
		{at: day(2024, 3, 4), vendor: "end"},
		{at: day(2024, 3, 5), vendor: "after"},
	}

	got := FilterByRange(records, func(s shipment) time.Time { return s.at }, r)

	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.vendor)
	}
	assert.Equal(t, []string{"start", "middle", "end"}, names)
	assert.Len(t, records, 5, "input must not be modified")
	assert.Equal(t, "before", records[0].vendor)
}

func TestFilterByRange_EndIsMidnight(t *testing.T) {
	r, err := ParseDateRange("2024-03-01", "2024-03-04", tokyo)
	require.NoError(t, err)

	records := []shipment{{at: day(2024, 3, 4).Add(9 * time.Hour), vendor: "late"}}

	got := FilterByRange(records, func(s shipment) time.Time { return s.at }, r)
	assert.Empty(t, got)
}

func TestFilterByRange_DisabledReturnsInput(t *testing.T) {
	records := []shipment{{at: day(2024, 3, 1)}, {at: day(2030, 1, 1)}}

	got := FilterByRange(records, func(s shipment) time.Time { return s.at }, DateRange{Start: day(2024, 1, 1)})
	assert.Equal(t, records, got)
}
