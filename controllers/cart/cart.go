package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/agroconnect/agroconnect-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found")
)

type CartItemInput struct {
	ProductName string   `json:"product_name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Quantity    int      `json:"quantity" binding:"omitempty,min=1"`
	WeightKg    *float64 `json:"weight_kg" binding:"omitempty,gte=0"`
	DistanceKm  *float64 `json:"distance_km" binding:"omitempty,gte=0"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartResponse is the cart body returned by every cart endpoint: the stored
// rows plus the derived totals.
type CartResponse struct {
	ID         uint              `json:"id"`
	User       string            `json:"user"`
	Items      []models.CartItem `json:"items"`
	UpdatedAt  time.Time         `json:"updated_at"`
	TotalItems int               `json:"total_items"`
	TotalCost  float64           `json:"total_cost"`
}

func Serialize(cart *models.Cart) CartResponse {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return CartResponse{
		ID:         cart.CartID,
		User:       cart.UserID,
		Items:      items,
		UpdatedAt:  cart.UpdatedAt,
		TotalItems: cart.TotalItems(),
		TotalCost:  cart.TotalCost(),
	}
}

// -------- Core Logic --------

// ForUpdate locks the selected rows until the transaction commits. SQLite
// (used in tests) has a single writer and rejects the FOR UPDATE syntax, so
// the clause is only added on Postgres.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// LockCart fetches the user's cart under the per-cart write lock, creating it
// on first access when create is set. Creation happens inside the caller's
// transaction, so a racing request either sees the new row or trips the
// unique index on user_id.
func LockCart(tx *gorm.DB, userID string, create bool) (*models.Cart, error) {
	var cart models.Cart
	err := ForUpdate(tx).Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !create {
		return nil, ErrCartNotFound
	}
	cart = models.Cart{UserID: userID}
	if err := tx.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// LoadCart reloads a cart with its items in insertion order.
func LoadCart(db *gorm.DB, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	err := db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&cart, cartID).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func touch(tx *gorm.DB, cart *models.Cart) error {
	return tx.Model(cart).UpdateColumn("updated_at", time.Now()).Error
}

// AddItem puts a product into the user's cart. If the product is already
// there, only the quantity accumulates: the stored price, weight and distance
// win over whatever the new request carries, and the line total is recomputed
// from the stored values.
func AddItem(db *gorm.DB, userID string, input CartItemInput) (*models.Cart, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	var cartID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := LockCart(tx, userID, true)
		if err != nil {
			return err
		}
		cartID = cart.CartID

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_name = ?", cart.CartID, input.ProductName).First(&item).Error
		switch {
		case err == nil:
			item.Quantity += quantity
			item.TotalCost = models.ItemCost(item.Price, item.Quantity, item.WeightKg, item.DistanceKm)
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:      cart.CartID,
				ProductName: input.ProductName,
				Price:       *input.Price,
				Quantity:    quantity,
				WeightKg:    input.WeightKg,
				DistanceKm:  input.DistanceKm,
				TotalCost:   models.ItemCost(*input.Price, quantity, input.WeightKg, input.DistanceKm),
				AddedAt:     time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return touch(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return LoadCart(db, cartID)
}

// UpdateItem replaces the quantity of an existing line item and recomputes
// its total from the stored price, weight and distance.
func UpdateItem(db *gorm.DB, userID, productName string, quantity int) (*models.Cart, error) {
	var cartID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := LockCart(tx, userID, false)
		if err != nil {
			return err
		}
		cartID = cart.CartID

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND product_name = ?", cart.CartID, productName).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		item.Quantity = quantity
		item.TotalCost = models.ItemCost(item.Price, item.Quantity, item.WeightKg, item.DistanceKm)
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return touch(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return LoadCart(db, cartID)
}

// RemoveItem deletes the named product from the cart. A missing item is a
// no-op; a missing cart is ErrCartNotFound.
func RemoveItem(db *gorm.DB, userID, productName string) (*models.Cart, error) {
	var cartID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		cart, err := LockCart(tx, userID, false)
		if err != nil {
			return err
		}
		cartID = cart.CartID

		if err := tx.Where("cart_id = ? AND product_name = ?", cart.CartID, productName).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return touch(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return LoadCart(db, cartID)
}

// Clear deletes every item in the user's cart; the cart row stays for reuse.
func Clear(db *gorm.DB, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		cart, err := LockCart(tx, userID, false)
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return touch(tx, cart)
	})
}

// Get returns the user's cart, creating an empty one on first access.
func Get(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return nil, err
	}
	return LoadCart(db, cart.CartID)
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

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		cart, err := Get(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, Serialize(cart))
	}
}

// POST /api/cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		cart, err := AddItem(db, userID, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, Serialize(cart))
	}
}

// PUT /api/cart/update/:product_name
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
			return
		}
		cart, err := UpdateItem(db, userID, c.Param("product_name"), input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, ErrCartNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			case errors.Is(err, ErrItemNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			}
			return
		}
		c.JSON(http.StatusOK, Serialize(cart))
	}
}

// DELETE /api/cart/remove/:product_name
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		cart, err := RemoveItem(db, userID, c.Param("product_name"))
		if err != nil {
			if errors.Is(err, ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, Serialize(cart))
	}
}

// DELETE /api/cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		if err := Clear(db, userID); err != nil {
			if errors.Is(err, ErrCartNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
