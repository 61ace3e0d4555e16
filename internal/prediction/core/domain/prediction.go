package domain

import (
	"time"

	"kokko-factory-service/internal/charts"

	"github.com/shopspring/decimal"
)

const (
	PredictedSeries = "予測産卵数"
	ActualSeries    = "実績産卵数"
	PotentialSeries = "累積快適ポテンシャル"
)

// Model holds the linear production model parameters.
type Model struct {
	BaseTemperature    decimal.Decimal
	UpperTemperature   decimal.Decimal
	Sensitivity        decimal.Decimal
	BaseCount          decimal.Decimal
	ReferencePotential decimal.Decimal
}

// DefaultModel predicts from the comfort potential accumulated over the
// previous seven days of temperatures between 15 and 30 °C.
var DefaultModel = Model{
	BaseTemperature:    decimal.NewFromInt(15),
	UpperTemperature:   decimal.NewFromInt(30),
	Sensitivity:        decimal.RequireFromString("0.5"),
	BaseCount:          decimal.NewFromInt(500),
	ReferencePotential: decimal.NewFromInt(1100),
}

// Predict returns B + A × (potential − reference), rounded and never negative.
func (m Model) Predict(potential decimal.Decimal) int {
	v := m.BaseCount.Add(m.Sensitivity.Mul(potential.Sub(m.ReferencePotential))).Round(0)
	if v.IsNegative() {
		return 0
	}
	return int(v.IntPart())
}

// Sample is one day's potential with the predicted and observed egg counts.
type Sample struct {
	Date                time.Time
	CumulativePotential decimal.Decimal
	PredictedCount      int
	ActualCount         int
}

type PredictionChart struct {
	GroupBy   charts.Granularity
	Line      charts.Chart
	Model     Model
	Discarded int
}
