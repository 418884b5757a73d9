package shipmentControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agroconnect/agroconnect-api/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Shipment{}))
	return db
}

func shipmentRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/shipments", ListShipments(db))
	r.POST("/api/shipments/create", CreateShipment(db))
	r.GET("/api/shipments/track/:tracking_number", TrackShipment(db))
	r.PATCH("/api/shipments/update-status/:tracking_number", UpdateShipmentStatus(db))
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const bookBody = `{
	"product_type": "Fertilizer",
	"weight_kg": 10,
	"distance_km": 20,
	"sender_name": "Ajay",
	"sender_phone": "9876543210",
	"sender_address": "Hassan, Karnataka",
	"receiver_name": "Ravi",
	"receiver_phone": "9123456780",
	"receiver_address": "Mysuru, Karnataka"
}`

func TestGenerateTrackingNumberFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		tn := GenerateTrackingNumber()
		assert.Len(t, tn, 11)
		assert.True(t, strings.HasPrefix(tn, "TRK"))
		seen[tn] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestBookShipmentGeneratesTrackingAndCost(t *testing.T) {
	r := shipmentRouter(newTestDB(t))

	w := doJSON(r, http.MethodPost, "/api/shipments/create", bookBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var shipment models.Shipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shipment))
	assert.True(t, strings.HasPrefix(shipment.TrackingNumber, "TRK"))
	assert.Equal(t, models.ShipmentStatusBooked, shipment.Status)
	assert.Equal(t, 1, shipment.Quantity)
	// Derived from the shipping surcharge formula: 0.05*10*20
	require.NotNil(t, shipment.TotalCost)
	assert.Equal(t, 10.0, *shipment.TotalCost)
}

func TestBookShipmentRejectsMissingFields(t *testing.T) {
	r := shipmentRouter(newTestDB(t))
	w := doJSON(r, http.MethodPost, "/api/shipments/create", `{"product_type": "Fertilizer"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackShipment(t *testing.T) {
	r := shipmentRouter(newTestDB(t))
	w := doJSON(r, http.MethodPost, "/api/shipments/create", bookBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var shipment models.Shipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shipment))

	w = doJSON(r, http.MethodGet, "/api/shipments/track/"+shipment.TrackingNumber, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/shipments/track/TRKMISSING1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateShipmentStatus(t *testing.T) {
	db := newTestDB(t)
	r := shipmentRouter(db)
	w := doJSON(r, http.MethodPost, "/api/shipments/create", bookBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var shipment models.Shipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shipment))

	w = doJSON(r, http.MethodPatch, "/api/shipments/update-status/"+shipment.TrackingNumber,
		`{"status": "in_transit"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Shipment
	require.NoError(t, db.Where("tracking_number = ?", shipment.TrackingNumber).First(&stored).Error)
	assert.Equal(t, models.ShipmentStatusInTransit, stored.Status)
	assert.NotNil(t, stored.ActualPickup)

	w = doJSON(r, http.MethodPatch, "/api/shipments/update-status/TRKMISSING1", `{"status": "delivered"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListShipmentsNewestFirst(t *testing.T) {
	r := shipmentRouter(newTestDB(t))
	for i := 0; i < 2; i++ {
		w := doJSON(r, http.MethodPost, "/api/shipments/create", bookBody)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/shipments", "")
	require.Equal(t, http.StatusOK, w.Code)

	var shipments []models.Shipment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shipments))
	assert.Len(t, shipments, 2)
}
