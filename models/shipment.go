package models

import "time"

type ShipmentStatus string

const (
	ShipmentStatusBooked    ShipmentStatus = "booked"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
)

type Shipment struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	TrackingNumber string         `gorm:"uniqueIndex;not null" json:"tracking_number"`
	ProductType    string         `gorm:"not null" json:"product_type"`
	WeightKg       float64        `gorm:"not null" json:"weight_kg"`
	Quantity       int            `gorm:"default:1" json:"quantity"`
	DistanceKm     *float64       `json:"distance_km,omitempty"`
	TotalCost      *float64       `json:"total_cost,omitempty"`
	Status         ShipmentStatus `gorm:"type:VARCHAR(50);default:'booked'" json:"status"`

	SenderName    string `gorm:"not null" json:"sender_name"`
	SenderPhone   string `gorm:"not null" json:"sender_phone"`
	SenderAddress string `gorm:"not null" json:"sender_address"`

	ReceiverName    string `gorm:"not null" json:"receiver_name"`
	ReceiverPhone   string `gorm:"not null" json:"receiver_phone"`
	ReceiverAddress string `gorm:"not null" json:"receiver_address"`

	ScheduledPickup   *time.Time `json:"scheduled_pickup,omitempty"`
	ActualPickup      *time.Time `json:"actual_pickup,omitempty"`
	ScheduledDelivery *time.Time `json:"scheduled_delivery,omitempty"`
	ActualDelivery    *time.Time `json:"actual_delivery,omitempty"`

	DriverName  string `json:"driver_name,omitempty"`
	DriverPhone string `json:"driver_phone,omitempty"`
	Notes       string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
