package fiber

import "kokko-factory-service/internal/inventory/core/domain"

// AddStockRequest represents a stock delivery
// @Description Adds count to the item; alert_threshold is optional
type AddStockRequest struct {
	SupplierName   string `json:"supplier_name" example:"Feed Co"`
	ItemName       string `json:"item_name" example:"layer feed"`
	Count          *int   `json:"count" example:"20"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	AlertThreshold *int   `json:"alert_threshold" example:"50"`
}

type SetCountRequest struct {
	SupplierName string `json:"supplier_name"`
	ItemName     string `json:"item_name"`
	NewCount     *int   `json:"new_count" example:"12"`
}

type SetThresholdRequest struct {
	SupplierName string `json:"supplier_name"`
	ItemName     string `json:"item_name"`
	NewThreshold *int   `json:"new_threshold" example:"30"`
}

type DeleteStockRequest struct {
	SupplierName string `json:"supplier_name"`
	ItemName     string `json:"item_name"`
}

type StockResponse struct {
	SupplierName   string `json:"supplier_name"`
	ItemName       string `json:"item_name"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phone_number"`
	Email          string `json:"email"`
	RemainingCount int    `json:"remaining_count"`
	AlertThreshold int    `json:"alert_threshold"`
	Low            bool   `json:"low"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_stock"`
	Message string `json:"message" example:"item_name must not be blank"`
}

func toStockResponse(l domain.StockLevel) StockResponse {
	return StockResponse{
		SupplierName:   l.Supplier.Name,
		ItemName:       l.ItemName,
		Address:        orUnregistered(l.Supplier.Address),
		PhoneNumber:    orUnregistered(l.Supplier.PhoneNumber),
		Email:          orUnregistered(l.Supplier.Email),
		RemainingCount: l.Remaining,
		AlertThreshold: l.Threshold,
		Low:            l.Low,
	}
}

func orUnregistered(s string) string {
	if s == "" {
		return domain.Unregistered
	}
	return s
}
