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

func setupTestDBForCuisines(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Cuisine{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupCuisineRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cuisineCtrl := controllers.NewCuisineController(db)
	router.GET("/cuisines", cuisineCtrl.GetAllCuisines)
	router.POST("/cuisines", cuisineCtrl.CreateCuisine)
	router.GET("/cuisines/:id", cuisineCtrl.GetCuisineByID)
	router.PATCH("/cuisines/:id", cuisineCtrl.UpdateCuisine)
	router.DELETE("/cuisines/:id", cuisineCtrl.DeleteCuisine)
	return router
}

func TestCuisineCRUD(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCuisines(t)
	router := setupCuisineRouter(db)

	payload, _ := json.Marshal(map[string]string{"name": "Nyama Choma"})
	req, _ := http.NewRequest("POST", "/cuisines", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("GET", "/cuisines/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Nyama Choma", data["name"])

	payload, _ = json.Marshal(map[string]string{"name": "Swahili"})
	req, _ = http.NewRequest("PATCH", "/cuisines/1", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var cuisine models.Cuisine
	assert.NoError(t, db.First(&cuisine, 1).Error)
	assert.Equal(t, "Swahili", cuisine.Name)

	req, _ = http.NewRequest("DELETE", "/cuisines/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/cuisines/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllCuisinesEmpty(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCuisines(t)
	router := setupCuisineRouter(db)

	req, _ := http.NewRequest("GET", "/cuisines", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "All cuisines", response["message"])
}
