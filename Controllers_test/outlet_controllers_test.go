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
	"github.com/nextgenfoodcourt/foodcourt-app/middlewares"
	"github.com/nextgenfoodcourt/foodcourt-app/models"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
)

func setupTestDBForOutlets(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Cuisine{}, &models.Outlet{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Create(&models.Cuisine{Name: "Indian"})
	return db
}

// Mirrors the production router: reads public, mutations behind the
// owner role gate.
func setupOutletRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	outletCtrl := controllers.NewOutletController(db)
	router.GET("/outlets", outletCtrl.GetAllOutlets)
	router.GET("/outlets/:id", outletCtrl.GetOutletByID)

	admin := router.Group("/outlets")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles("owner"))
	{
		admin.POST("", outletCtrl.CreateOutlet)
		admin.PATCH("/:id", outletCtrl.UpdateOutlet)
		admin.DELETE("/:id", outletCtrl.DeleteOutlet)
	}
	return router
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(1, role)
	assert.NoError(t, err)
	return token
}

func postOutlet(t *testing.T, router *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"name": "Dosa Corner", "contact": "0700000004", "cuisine_id": 1, "owner_id": 1,
	})
	assert.NoError(t, err)
	req, _ := http.NewRequest("POST", "/outlets", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOutletAsOwner(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOutlets(t)
	router := setupOutletRouter(db)

	w := postOutlet(t, router, tokenForRole(t, "owner"))
	assert.Equal(t, http.StatusCreated, w.Code)

	var outlet models.Outlet
	assert.NoError(t, db.First(&outlet, 1).Error)
	assert.Equal(t, "Dosa Corner", outlet.Name)
}

func TestCreateOutletAsCustomerForbidden(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOutlets(t)
	router := setupOutletRouter(db)

	w := postOutlet(t, router, tokenForRole(t, "customer"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.Model(&models.Outlet{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateOutletWithoutToken(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOutlets(t)
	router := setupOutletRouter(db)

	w := postOutlet(t, router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOutletReadsArePublic(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOutlets(t)
	router := setupOutletRouter(db)

	db.Create(&models.Outlet{Name: "Thali Express", Contact: "0700000005", CuisineID: 1, OwnerID: 1})

	req, _ := http.NewRequest("GET", "/outlets/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "Thali Express", data["name"])
}
