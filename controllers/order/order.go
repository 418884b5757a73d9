package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	cartControllers "github.com/agroconnect/agroconnect-api/controllers/cart"
	"github.com/agroconnect/agroconnect-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// -------- Core Logic --------

// PlaceOrder converts the user's cart into an immutable order snapshot. The
// whole sequence runs in one transaction: lock the cart, copy every item into
// an OrderItem, create the order with the cart's total, then empty the cart.
// The cart row itself survives for reuse.
func PlaceOrder(db *gorm.DB, userID string) (*models.Order, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := cartControllers.LockCart(tx, userID, false)
		if err != nil {
			if errors.Is(err, cartControllers.ErrCartNotFound) {
				return ErrEmptyCart
			}
			return err
		}

		var items []models.CartItem
		if err := tx.Where("cart_id = ?", cart.CartID).Order("id ASC").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		var orderItems []models.OrderItem
		for _, item := range items {
			cost := item.TotalCost
			if cost == 0 {
				cost = item.Price * float64(item.Quantity)
			}
			total += item.TotalCost
			orderItems = append(orderItems, models.OrderItem{
				ProductName: item.ProductName,
				Price:       item.Price,
				Quantity:    item.Quantity,
				TotalCost:   cost,
			})
		}

		order := models.Order{
			UserID:      userID,
			OrderRef:    generateOrderRef(),
			TotalAmount: total,
			Status:      models.OrderStatusPending,
			Items:       orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID

		// Clear cart items
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UserOrders lists the user's orders, newest first.
func UserOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := db.
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// GetOrder fetches one of the user's orders by id.
func GetOrder(db *gorm.DB, userID string, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		order, err := PlaceOrder(db, userID)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}
		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		orders, err := UserOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:order_id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		orderID, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		order, err := GetOrder(db, userID, uint(orderID))
		if err != nil {
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
