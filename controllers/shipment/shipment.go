package shipmentControllers

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"time"

	"github.com/agroconnect/agroconnect-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookShipmentInput struct {
	ProductType string   `json:"product_type" binding:"required"`
	WeightKg    *float64 `json:"weight_kg" binding:"required,gt=0"`
	Quantity    int      `json:"quantity" binding:"omitempty,min=1"`
	DistanceKm  *float64 `json:"distance_km" binding:"omitempty,gt=0"`
	TotalCost   *float64 `json:"total_cost" binding:"omitempty,gte=0"`

	SenderName    string `json:"sender_name" binding:"required"`
	SenderPhone   string `json:"sender_phone" binding:"required"`
	SenderAddress string `json:"sender_address" binding:"required"`

	ReceiverName    string `json:"receiver_name" binding:"required"`
	ReceiverPhone   string `json:"receiver_phone" binding:"required"`
	ReceiverAddress string `json:"receiver_address" binding:"required"`

	ScheduledPickup   *time.Time `json:"scheduled_pickup"`
	ScheduledDelivery *time.Time `json:"scheduled_delivery"`
	Notes             string     `json:"notes"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

const trackingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTrackingNumber returns a reference like TRK7G2XQ9BD.
func GenerateTrackingNumber() string {
	b := make([]byte, 8)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(trackingCharset))))
		if err != nil {
			b[i] = 'X'
			continue
		}
		b[i] = trackingCharset[n.Int64()]
	}
	return "TRK" + string(b)
}

// GET /api/shipments
func ListShipments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shipments []models.Shipment
		if err := db.Order("created_at DESC").Find(&shipments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipments"})
			return
		}
		if shipments == nil {
			shipments = []models.Shipment{}
		}
		c.JSON(http.StatusOK, shipments)
	}
}

// POST /api/shipments/create
func CreateShipment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BookShipmentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}

		// Derive the cost from the cart's shipping surcharge formula when the
		// client did not quote one.
		totalCost := input.TotalCost
		if totalCost == nil && input.DistanceKm != nil {
			cost := models.ItemCost(0, quantity, input.WeightKg, input.DistanceKm)
			totalCost = &cost
		}

		shipment := models.Shipment{
			TrackingNumber:    GenerateTrackingNumber(),
			ProductType:       input.ProductType,
			WeightKg:          *input.WeightKg,
			Quantity:          quantity,
			DistanceKm:        input.DistanceKm,
			TotalCost:         totalCost,
			Status:            models.ShipmentStatusBooked,
			SenderName:        input.SenderName,
			SenderPhone:       input.SenderPhone,
			SenderAddress:     input.SenderAddress,
			ReceiverName:      input.ReceiverName,
			ReceiverPhone:     input.ReceiverPhone,
			ReceiverAddress:   input.ReceiverAddress,
			ScheduledPickup:   input.ScheduledPickup,
			ScheduledDelivery: input.ScheduledDelivery,
			Notes:             input.Notes,
		}
		if err := db.Create(&shipment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book shipment"})
			return
		}

		c.JSON(http.StatusCreated, shipment)
	}
}

// GET /api/shipments/track/:tracking_number
func TrackShipment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shipment models.Shipment
		err := db.Where("tracking_number = ?", c.Param("tracking_number")).First(&shipment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipment"})
			}
			return
		}
		c.JSON(http.StatusOK, shipment)
	}
}

// PATCH /api/shipments/update-status/:tracking_number
func UpdateShipmentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var shipment models.Shipment
		err := db.Where("tracking_number = ?", c.Param("tracking_number")).First(&shipment).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shipment not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipment"})
			}
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		updates := map[string]interface{}{"status": models.ShipmentStatus(input.Status)}
		now := time.Now()
		switch models.ShipmentStatus(input.Status) {
		case models.ShipmentStatusInTransit:
			updates["actual_pickup"] = &now
		case models.ShipmentStatusDelivered:
			updates["actual_delivery"] = &now
		}
		if err := db.Model(&shipment).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
	}
}
