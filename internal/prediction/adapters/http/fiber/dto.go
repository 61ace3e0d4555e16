package fiber

import (
	"kokko-factory-service/internal/prediction/core/domain"

	"github.com/shopspring/decimal"
)

// SampleRequest represents one day of prediction input
// @Description Prediction sample DTO
type SampleRequest struct {
	Date                string           `json:"date" example:"2024-05-01"`
	CumulativePotential *decimal.Decimal `json:"cumulative_potential" swaggertype:"number" example:"1150.5"`
	ActualCount         *int             `json:"actual_count" example:"512"`
}

type SampleResponse struct {
	Date                string  `json:"date" example:"2024-05-01"`
	CumulativePotential float64 `json:"cumulative_potential" example:"1150.5"`
	PredictedCount      int     `json:"predicted_count" example:"525"`
	ActualCount         int     `json:"actual_count" example:"512"`
}

// DatasetResponse is one chart.js line dataset with its axis binding.
type DatasetResponse struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor"`
	BackgroundColor string    `json:"backgroundColor"`
	Tension         float64   `json:"tension"`
	YAxisID         string    `json:"yAxisID"`
	BorderDash      []int     `json:"borderDash,omitempty"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
	PointRadius     int       `json:"pointRadius"`
}

type ModelResponse struct {
	BaseTemperature    float64 `json:"base_temperature" example:"15"`
	UpperTemperature   float64 `json:"upper_temperature" example:"30"`
	Sensitivity        float64 `json:"sensitivity" example:"0.5"`
	BaseCount          float64 `json:"base_count" example:"500"`
	ReferencePotential float64 `json:"reference_potential" example:"1100"`
}

// PredictionChartResponse carries the averaged prediction chart.
type PredictionChartResponse struct {
	GroupBy   string            `json:"group_by" example:"day"`
	Labels    []string          `json:"labels"`
	Keys      []string          `json:"keys"`
	Datasets  []DatasetResponse `json:"datasets"`
	Model     ModelResponse     `json:"model"`
	Discarded int               `json:"discarded"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_sample"`
	Message string `json:"message,omitempty"`
}

func toSampleResponse(s domain.Sample) SampleResponse {
	return SampleResponse{
		Date:                s.Date.Format("2006-01-02"),
		CumulativePotential: s.CumulativePotential.InexactFloat64(),
		PredictedCount:      s.PredictedCount,
		ActualCount:         s.ActualCount,
	}
}

func toChartResponse(c *domain.PredictionChart) PredictionChartResponse {
	datasets := make([]DatasetResponse, 0, len(c.Line.Datasets))
	for _, ds := range c.Line.Datasets {
		data := ds.Data
		if data == nil {
			data = []float64{}
		}
		datasets = append(datasets, DatasetResponse{
			Label:           ds.Label,
			Data:            data,
			BorderColor:     ds.Style.BorderColor,
			BackgroundColor: ds.Style.BackgroundColor,
			Tension:         ds.Style.Tension,
			YAxisID:         ds.Style.YAxisID,
			BorderDash:      ds.Style.BorderDash,
			BorderWidth:     ds.Style.BorderWidth,
			PointRadius:     ds.Style.PointRadius,
		})
	}
	labels, keys := c.Line.Labels, c.Line.Keys
	if labels == nil {
		labels = []string{}
	}
	if keys == nil {
		keys = []string{}
	}
	return PredictionChartResponse{
		GroupBy:  string(c.GroupBy),
		Labels:   labels,
		Keys:     keys,
		Datasets: datasets,
		Model: ModelResponse{
			BaseTemperature:    c.Model.BaseTemperature.InexactFloat64(),
			UpperTemperature:   c.Model.UpperTemperature.InexactFloat64(),
			Sensitivity:        c.Model.Sensitivity.InexactFloat64(),
			BaseCount:          c.Model.BaseCount.InexactFloat64(),
			ReferencePotential: c.Model.ReferencePotential.InexactFloat64(),
		},
		Discarded: c.Discarded,
	}
}
