package models

// Item represents a tracked inventory good with buy/sell pricing.
// Prices are in currency units per unit quantity.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// UserID is the opaque device identifier owning this item.
	UserID string `json:"user_id"`

	// Name is the human-readable name of the good (e.g., "Tomatoes").
	Name string `json:"name"`

	// QuantityValue is the amount on hand, in QuantityUnit units.
	QuantityValue float64 `json:"quantity_value"`

	// QuantityUnit is a free-text unit label (e.g., "kg", "liters").
	QuantityUnit string `json:"quantity_unit"`

	// BuyingPrice is the purchase price per unit quantity.
	BuyingPrice float64 `json:"buying_price"`

	// SellingPrice is the sale price per unit quantity.
	// May be below BuyingPrice; negative-profit items are valid.
	SellingPrice float64 `json:"selling_price"`

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Profit returns this item's individual profit:
// (selling price - buying price) x quantity.
func (i *Item) Profit() float64 {
	return (i.SellingPrice - i.BuyingPrice) * i.QuantityValue
}
