package charts

import (
	"fmt"
	"sort"
	"time"
)

// Style carries the presentation fields the chart renderer expects per dataset.
type Style struct {
	BorderColor     string
	BackgroundColor string
	Tension         float64
	YAxisID         string
	BorderDash      []int
	BorderWidth     int
	PointRadius     int
}

// StyleFunc picks a style for the series at position index of the selection.
type StyleFunc func(series string, index int) Style

// Dataset is one plotted line, aligned positionally with Chart.Labels.
type Dataset struct {
	Label string
	Data  []float64
	Style Style
}

// Chart is the renderer-ready line chart.
type Chart struct {
	Keys     []string
	Labels   []string
	Datasets []Dataset
}

// Pie is a single-dataset share chart.
type Pie struct {
	Labels []string
	Data   []float64
	Colors []string
	Border []string
}

// SortedKeys returns the union of keys across all series of b, ordered by
// the start instant of each bucket.
func SortedKeys(b *Buckets) []string {
	keys := b.Keys()
	starts := make(map[string]time.Time, len(keys))
	for _, k := range keys {
		t, err := KeyStart(k, b.granularity, time.UTC)
		if err != nil {
			continue
		}
		starts[k] = t
	}
	sort.Slice(keys, func(i, j int) bool {
		ti, iok := starts[keys[i]]
		tj, jok := starts[keys[j]]
		switch {
		case iok && jok:
			return ti.Before(tj)
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// BuildSeries lays out one dataset per selected series over the shared,
// chronologically sorted key axis. The axis always covers every series in b
// so toggling the selection never moves the x-axis.
func BuildSeries(b *Buckets, selected []string, style StyleFunc) Chart {
	keys := SortedKeys(b)
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = FormatLabel(k, b.granularity)
	}

	datasets := make([]Dataset, 0, len(selected))
	for i, name := range selected {
		data := make([]float64, len(keys))
		for j, k := range keys {
			data[j] = b.Value(name, k)
		}
		ds := Dataset{Label: name, Data: data}
		if style != nil {
			ds.Style = style(name, i)
		}
		datasets = append(datasets, ds)
	}

	return Chart{Keys: keys, Labels: labels, Datasets: datasets}
}

// BuildPie sums each named series over all buckets.
func BuildPie(b *Buckets, names []string) Pie {
	p := Pie{
		Labels: make([]string, 0, len(names)),
		Data:   make([]float64, 0, len(names)),
		Colors: make([]string, 0, len(names)),
		Border: make([]string, 0, len(names)),
	}
	for i, name := range names {
		p.Labels = append(p.Labels, name)
		p.Data = append(p.Data, b.Total(name))
		p.Colors = append(p.Colors, Color(i, 0.6))
		p.Border = append(p.Border, Color(i, 1))
	}
	return p
}

// Color spreads series hues around the wheel in 47° steps.
func Color(i int, alpha float64) string {
	hue := (i * 47) % 360
	return fmt.Sprintf("hsl(%d 70%% 50%% / %g)", hue, alpha)
}
