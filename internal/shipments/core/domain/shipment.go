package domain

import "time"

// UnknownVendor labels shipments whose customer record has been deleted.
const UnknownVendor = "不明な取引先"

type Shipment struct {
	ID           string
	CustomerName string
	ShippedCount int
	ShipmentDate time.Time
}

// Contact is the customer data captured alongside a shipment.
type Contact struct {
	Address     string
	PhoneNumber string
	Email       string
}

// ShipmentView is a shipment joined with its customer's contact details.
type ShipmentView struct {
	Shipment
	Vendor string
	Contact
}
