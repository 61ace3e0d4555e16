package domain

// Unregistered is shown in place of supplier contact fields never provided.
const Unregistered = "未登録"

type Supplier struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
}

// StockItem is one supplied item as stored. Threshold is nil until an alert
// threshold has been set for the item.
type StockItem struct {
	Supplier  Supplier
	ItemName  string
	Count     int
	Threshold *int
}

// StockLevel is a stock item with its effective alert threshold.
type StockLevel struct {
	Supplier  Supplier
	ItemName  string
	Remaining int
	Threshold int
	Low       bool
}
