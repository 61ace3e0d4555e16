package fiber

import (
	"time"

	"kokko-factory-service/internal/shipments/core/domain"
)

// CreateShipmentRequest represents shipment creation payload
// @Description Unknown customers are registered with the given contact details
type CreateShipmentRequest struct {
	CustomerName string `json:"customer_name" example:"Yamada Farm Shop"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	ShippedCount *int   `json:"shipped_count" example:"240"`
	ShipmentDate string `json:"shipment_date" example:"2024-03-01"`
}

type CreateShipmentResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ShipmentResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Vendor       string    `json:"vendor"`
	Address      *string   `json:"address"`
	PhoneNumber  *string   `json:"phone_number"`
	Email        *string   `json:"email"`
	ShipmentDate time.Time `json:"shipment_date"`
	ShippedCount int       `json:"shipped_count"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_shipment"`
	Message string `json:"message" example:"shipped_count must be at least 0"`
}

func toShipmentResponse(v domain.ShipmentView) ShipmentResponse {
	return ShipmentResponse{
		ID:           v.ID,
		CustomerName: v.CustomerName,
		Vendor:       v.Vendor,
		Address:      optional(v.Address),
		PhoneNumber:  optional(v.PhoneNumber),
		Email:        optional(v.Email),
		ShipmentDate: v.ShipmentDate,
		ShippedCount: v.ShippedCount,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
