package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nextgenfoodcourt/foodcourt-app/models"
	"github.com/nextgenfoodcourt/foodcourt-app/services"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// GetAllTables
func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All tables", tables)
}

// CreateTable -> new tables start unclaimed
func (tc *TableController) CreateTable(c *gin.Context) {
	var body struct {
		OutletID    uint   `json:"outlet_id" binding:"required"`
		TableNumber int    `json:"table_number" binding:"required"`
		Capacity    int    `json:"capacity" binding:"required"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{
		OutletID:    body.OutletID,
		TableNumber: body.TableNumber,
		Capacity:    body.Capacity,
		Status:      "available",
		IsAvailable: true,
	}
	if body.Status != "" {
		table.Status = body.Status
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	utils.InfoLogger.Printf("New table created: #%d (outlet=%d)", table.TableNumber, table.OutletID)
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// GetTableByID
func (tc *TableController) GetTableByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrTableNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> patch number/capacity/status/outlet. The is_available
// flag is owned by the reservation service and cannot be patched here.
func (tc *TableController) UpdateTable(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		TableNumber *int    `json:"table_number"`
		Capacity    *int    `json:"capacity"`
		Status      *string `json:"status"`
		OutletID    *uint   `json:"outlet_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrTableNotFound)
		return
	}

	if body.TableNumber != nil {
		table.TableNumber = *body.TableNumber
	}
	if body.Capacity != nil {
		table.Capacity = *body.Capacity
	}
	if body.Status != nil {
		table.Status = *body.Status
	}
	if body.OutletID != nil {
		table.OutletID = *body.OutletID
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d updated (status=%s)", table.ID, table.Status)
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable
func (tc *TableController) DeleteTable(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, services.ErrTableNotFound)
		return
	}
	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted successfully", nil)
}
