package Controllers_test

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

	"github.com/nextgenfoodcourt/foodcourt-app/controllers"
	"github.com/nextgenfoodcourt/foodcourt-app/models"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
)

func setupTestDBForTables(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Cuisine{}, &models.Outlet{}, &models.Table{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	db.Create(&models.User{Name: "Owner", Email: "owner@example.com", PhoneNo: "0712000001", Password: "x", Role: "owner"})
	db.Create(&models.Cuisine{Name: "Ethiopian"})
	db.Create(&models.Outlet{Name: "Injera House", Contact: "0700000002", CuisineID: 1, OwnerID: 1})
	return db
}

func setupTableRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	tableCtrl := controllers.NewTableController(db)
	router.GET("/tables", tableCtrl.GetAllTables)
	router.POST("/tables", tableCtrl.CreateTable)
	router.GET("/tables/:id", tableCtrl.GetTableByID)
	router.PATCH("/tables/:id", tableCtrl.UpdateTable)
	router.DELETE("/tables/:id", tableCtrl.DeleteTable)
	return router
}

func TestCreateTableStartsAvailable(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	router := setupTableRouter(db)

	payload, _ := json.Marshal(map[string]interface{}{
		"outlet_id": 1, "table_number": 7, "capacity": 6,
	})
	req, _ := http.NewRequest("POST", "/tables", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, true, data["is_available"])
	assert.Equal(t, "available", data["status"])
	assert.Equal(t, float64(7), data["table_number"])
}

func TestPatchTableCannotFlipAvailability(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	router := setupTableRouter(db)

	db.Create(&models.Table{OutletID: 1, TableNumber: 3, Capacity: 4, Status: "available", IsAvailable: false})

	payload, _ := json.Marshal(map[string]interface{}{
		"capacity": 8, "is_available": true,
	})
	req, _ := http.NewRequest("PATCH", "/tables/1", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var table models.Table
	assert.NoError(t, db.First(&table, 1).Error)
	assert.Equal(t, 8, table.Capacity)
	assert.False(t, table.IsAvailable)
}

func TestGetTableNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	router := setupTableRouter(db)

	req, _ := http.NewRequest("GET", "/tables/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Table not found", response["error"])
}

func TestDeleteTableEndpoint(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForTables(t)
	router := setupTableRouter(db)

	db.Create(&models.Table{OutletID: 1, TableNumber: 5, Capacity: 2, Status: "available", IsAvailable: true})

	req, _ := http.NewRequest("DELETE", "/tables/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(0), count)

	req, _ = http.NewRequest("DELETE", "/tables/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
