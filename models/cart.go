package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"user"`                           // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// One line item per product name within a cart; re-adding the same product
// grows Quantity instead of inserting a second row.
type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CartID      uint      `gorm:"index;uniqueIndex:idx_cart_product,priority:1" json:"-"`
	ProductName string    `gorm:"not null;uniqueIndex:idx_cart_product,priority:2" json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	WeightKg    *float64  `json:"weight_kg,omitempty"`
	DistanceKm  *float64  `json:"distance_km,omitempty"`
	TotalCost   float64   `json:"total_cost"`
	AddedAt     time.Time `json:"-"`
}

// TotalItems sums the quantities of the loaded items.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalCost sums the line totals of the loaded items.
func (c *Cart) TotalCost() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.TotalCost
	}
	return total
}

// ItemCost prices a line item: price*quantity plus a shipping surcharge of
// 0.05 per kg per km when both weight and distance are known.
func ItemCost(price float64, quantity int, weightKg, distanceKm *float64) float64 {
	base := price * float64(quantity)
	shipping := 0.0
	if weightKg != nil && distanceKm != nil && *weightKg != 0 && *distanceKm != 0 {
		shipping = 0.05 * *weightKg * *distanceKm
	}
	return base + shipping
}
