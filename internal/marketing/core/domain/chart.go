package domain

import (
	"time"

	"kokko-factory-service/internal/charts"
)

// TotalSeries is the synthetic series summing every vendor.
const TotalSeries = "総出荷数"

// ShipmentRecord is the slice of a shipment the analytics need.
type ShipmentRecord struct {
	Vendor       string
	ShippedCount int64
	ShipmentDate time.Time
}

// ShipmentChart is the rendered analytics view.
type ShipmentChart struct {
	GroupBy   charts.Granularity
	Line      charts.Chart
	Pie       charts.Pie
	Vendors   []string
	Discarded int
}
