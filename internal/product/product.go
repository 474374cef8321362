package product

// Product is a catalog entry. Price fields are unit prices; DiscountedPrice
// is nil when no discount is active.
type Product struct {
	ID              int      `json:"productId"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	QuantityInStock int      `json:"quantityInStock"`
	Model           string   `json:"model,omitempty"`
	SerialNumber    string   `json:"serialNumber,omitempty"`
	WarrantyStatus  string   `json:"warrantyStatus,omitempty"`
	Distributor     string   `json:"distributor,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

// EffectivePrice is the discounted price when one is set, otherwise the
// list price. Cart and order lines are priced with this.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}
