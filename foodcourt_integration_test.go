package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nextgenfoodcourt/foodcourt-app/database"
	"github.com/nextgenfoodcourt/foodcourt-app/models"
	"github.com/nextgenfoodcourt/foodcourt-app/router"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
)

func setupIntegrationApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.Create(&models.User{Name: "Walk-in Guest", Email: "walkin@example.com", PhoneNo: "0711000000", Password: "x", Role: "customer"})
	db.Create(&models.Cuisine{Name: "Grill"})
	db.Create(&models.Outlet{Name: "Charcoal & Co", Contact: "0700000003", CuisineID: 1, OwnerID: 1})
	db.Create(&models.Table{OutletID: 1, TableNumber: 1, Capacity: 4, Status: "available", IsAvailable: true})

	return router.SetupRouter(db), db
}

func doJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Books table #1, verifies a second booking is refused, cancels, then
// books it again through the public HTTP surface.
func TestReservationLifecycleOverHTTP(t *testing.T) {
	app, db := setupIntegrationApp(t)

	booking := map[string]interface{}{
		"user_id":      1,
		"table_id":     1,
		"booking_date": "2024-06-01",
		"booking_time": "19:00:00",
	}

	w := doJSON(app, "POST", "/reservations", booking)
	assert.Equal(t, http.StatusCreated, w.Code)

	var table models.Table
	assert.NoError(t, db.First(&table, 1).Error)
	assert.False(t, table.IsAvailable)

	w = doJSON(app, "POST", "/reservations", booking)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var conflict map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &conflict))
	assert.Equal(t, "Table is not available", conflict["error"])

	w = doJSON(app, "DELETE", "/reservations/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	assert.NoError(t, db.First(&table, 1).Error)
	assert.True(t, table.IsAvailable)

	w = doJSON(app, "POST", "/reservations", booking)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHealthAndWelcome(t *testing.T) {
	app, _ := setupIntegrationApp(t)

	w := doJSON(app, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var health map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])

	w = doJSON(app, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// A fresh outlet with menu items must serve orders end to end: create
// order, attach items, then read the enriched order list back.
func TestOrderFlowOverHTTP(t *testing.T) {
	app, _ := setupIntegrationApp(t)

	w := doJSON(app, "POST", "/menu-items", map[string]interface{}{
		"outlet_id": 1, "name": "Half Chicken", "price": 650.0, "category": "mains",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(app, "POST", "/orders", map[string]interface{}{
		"user_id": 1, "total_price": 650.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var orderResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orderResp))
	orderData := orderResp["data"].(map[string]interface{})
	assert.Equal(t, "pending", orderData["status"])

	w = doJSON(app, "POST", "/order-items", map[string]interface{}{
		"order_id": 1, "menuitem_id": 1, "quantity": 2, "sub_total": 1300.0,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(app, "GET", "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var listResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	orders := listResp["data"].([]interface{})
	assert.Len(t, orders, 1)
	user := orders[0].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Walk-in Guest", user["name"])
}
