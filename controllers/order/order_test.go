package orderControllers

import (
	"testing"

	cartControllers "github.com/agroconnect/agroconnect-api/controllers/cart"
	"github.com/agroconnect/agroconnect-api/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func floatPtr(f float64) *float64 { return &f }

func fillCart(t *testing.T, db *gorm.DB, userID string) {
	t.Helper()
	first := cartControllers.CartItemInput{
		ProductName: "Urea Fertilizer",
		Price:       floatPtr(100),
		Quantity:    1,
		WeightKg:    floatPtr(10),
		DistanceKm:  floatPtr(20),
	}
	_, err := cartControllers.AddItem(db, userID, first)
	require.NoError(t, err)

	second := cartControllers.CartItemInput{
		ProductName: "Wheat Seeds",
		Price:       floatPtr(25),
		Quantity:    2,
	}
	_, err = cartControllers.AddItem(db, userID, second)
	require.NoError(t, err)
}

func TestPlaceOrderOnEmptyCartFails(t *testing.T) {
	db := newTestDB(t)

	// No cart at all
	_, err := PlaceOrder(db, "farmer-1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Cart exists but is empty
	_, err = cartControllers.Get(db, "farmer-1")
	require.NoError(t, err)
	_, err = PlaceOrder(db, "farmer-1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	db := newTestDB(t)
	fillCart(t, db, "farmer-1")

	order, err := PlaceOrder(db, "farmer-1")
	require.NoError(t, err)

	// 100*1 + 0.05*10*20 = 110, 25*2 = 50
	assert.Equal(t, 160.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderRef)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Urea Fertilizer", order.Items[0].ProductName)
	assert.Equal(t, 110.0, order.Items[0].TotalCost)
	assert.Equal(t, "Wheat Seeds", order.Items[1].ProductName)
	assert.Equal(t, 50.0, order.Items[1].TotalCost)

	// Cart row survives, its items are gone
	cart, err := cartControllers.Get(db, "farmer-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems())
}

func TestOrderIsImmutableSnapshot(t *testing.T) {
	db := newTestDB(t)
	fillCart(t, db, "farmer-1")

	order, err := PlaceOrder(db, "farmer-1")
	require.NoError(t, err)

	// Later cart activity must not leak into the order
	_, err = cartControllers.AddItem(db, "farmer-1", cartControllers.CartItemInput{
		ProductName: "Power Tiller",
		Price:       floatPtr(28500),
		Quantity:    1,
	})
	require.NoError(t, err)

	reloaded, err := GetOrder(db, "farmer-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, 160.0, reloaded.TotalAmount)
	assert.Len(t, reloaded.Items, 2)
}

func TestPlaceOrderUsesFallbackItemCost(t *testing.T) {
	db := newTestDB(t)

	cart, err := cartControllers.Get(db, "farmer-1")
	require.NoError(t, err)
	// A row written without a computed total falls back to price*quantity
	require.NoError(t, db.Create(&models.CartItem{
		CartID:      cart.CartID,
		ProductName: "Legacy Item",
		Price:       40,
		Quantity:    3,
	}).Error)

	order, err := PlaceOrder(db, "farmer-1")
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 120.0, order.Items[0].TotalCost)
}

func TestUserOrdersAreScopedAndNewestFirst(t *testing.T) {
	db := newTestDB(t)
	fillCart(t, db, "farmer-1")
	_, err := PlaceOrder(db, "farmer-1")
	require.NoError(t, err)

	fillCart(t, db, "farmer-2")
	_, err = PlaceOrder(db, "farmer-2")
	require.NoError(t, err)

	orders, err := UserOrders(db, "farmer-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "farmer-1", orders[0].UserID)
}

func TestGetOrderBelongingToAnotherUserIsNotFound(t *testing.T) {
	db := newTestDB(t)
	fillCart(t, db, "farmer-1")
	order, err := PlaceOrder(db, "farmer-1")
	require.NoError(t, err)

	_, err = GetOrder(db, "farmer-2", order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = GetOrder(db, "farmer-1", order.ID+100)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCheckoutTwiceNeedsRefilledCart(t *testing.T) {
	db := newTestDB(t)
	fillCart(t, db, "farmer-1")

	_, err := PlaceOrder(db, "farmer-1")
	require.NoError(t, err)

	_, err = PlaceOrder(db, "farmer-1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	fillCart(t, db, "farmer-1")
	order, err := PlaceOrder(db, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, 160.0, order.TotalAmount)
}
