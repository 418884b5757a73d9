package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting fulfillment
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by seller
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping
)

// Order is a frozen snapshot of a cart at checkout time. TotalAmount and the
// item rows never track later cart changes.
type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"index;not null" json:"user"`
	OrderRef    string      `gorm:"uniqueIndex" json:"order_ref"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"-"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalCost   float64 `json:"total_cost"`
}
