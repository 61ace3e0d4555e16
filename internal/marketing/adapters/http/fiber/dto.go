package fiber

import (
	"kokko-factory-service/internal/charts"
	"kokko-factory-service/internal/marketing/core/domain"
)

// DatasetResponse is one chart.js line dataset.
type DatasetResponse struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Tension         float64   `json:"tension"`
}

type PieResponse struct {
	Labels          []string  `json:"labels"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     int       `json:"borderWidth"`
}

// ShipmentChartResponse carries the line chart, vendor pie and legend.
// @Description keys are the raw bucket keys aligned with labels
type ShipmentChartResponse struct {
	GroupBy   string            `json:"group_by" example:"month"`
	Labels    []string          `json:"labels"`
	Keys      []string          `json:"keys"`
	Datasets  []DatasetResponse `json:"datasets"`
	Pie       PieResponse       `json:"pie"`
	Vendors   []string          `json:"vendors"`
	Discarded int               `json:"discarded"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid chart query: unknown granularity \"week\""`
}

func toResponse(c *domain.ShipmentChart) ShipmentChartResponse {
	datasets := make([]DatasetResponse, 0, len(c.Line.Datasets))
	for _, ds := range c.Line.Datasets {
		datasets = append(datasets, toDataset(ds))
	}
	return ShipmentChartResponse{
		GroupBy:  string(c.GroupBy),
		Labels:   nonNil(c.Line.Labels),
		Keys:     nonNil(c.Line.Keys),
		Datasets: datasets,
		Pie: PieResponse{
			Labels:          nonNil(c.Pie.Labels),
			Data:            nonNilFloats(c.Pie.Data),
			BackgroundColor: nonNil(c.Pie.Colors),
			BorderColor:     nonNil(c.Pie.Border),
			BorderWidth:     1,
		},
		Vendors:   nonNil(c.Vendors),
		Discarded: c.Discarded,
	}
}

func toDataset(ds charts.Dataset) DatasetResponse {
	return DatasetResponse{
		Label:           ds.Label,
		Data:            nonNilFloats(ds.Data),
		BorderColor:     ds.Style.BorderColor,
		BackgroundColor: ds.Style.BackgroundColor,
		Tension:         ds.Style.Tension,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nonNilFloats(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}
