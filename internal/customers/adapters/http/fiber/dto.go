package fiber

import "time"

// CreateCustomerRequest represents customer creation payload
// @Description Customer creation DTO
type CreateCustomerRequest struct {
	Name        string `json:"name" example:"Yamada Farm Shop"`
	Address     string `json:"address" example:"Tokyo"`
	PhoneNumber string `json:"phone_number" example:"03-0000-0000"`
	Email       string `json:"email" example:"shop@example.com"`
}

type CreateCustomerResponse struct {
	ID string `json:"id"`
}

type BulkCreateCustomersRequest struct {
	Customers []CreateCustomerRequest `json:"customers"`
}

type BulkCreateCustomersResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     *string   `json:"address"`
	PhoneNumber *string   `json:"phone_number"`
	Email       *string   `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_customer"`
	Message string `json:"message" example:"name must not be blank"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
