package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nextgenfoodcourt/foodcourt-app/models"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
	"gorm.io/gorm"
)

var ErrOrderItemNotFound = errors.New("Order item not found")

type OrderItemController struct {
	DB *gorm.DB
}

func NewOrderItemController(db *gorm.DB) *OrderItemController {
	return &OrderItemController{DB: db}
}

// GetAllOrderItems
func (oic *OrderItemController) GetAllOrderItems(c *gin.Context) {
	var items []models.OrderItem
	if err := oic.DB.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All order items", items)
}

// CreateOrderItem
func (oic *OrderItemController) CreateOrderItem(c *gin.Context) {
	var body struct {
		OrderID    uint    `json:"order_id" binding:"required"`
		MenuItemID uint    `json:"menuitem_id" binding:"required"`
		Quantity   int     `json:"quantity"`
		SubTotal   float64 `json:"sub_total"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.OrderItem{
		OrderID:    body.OrderID,
		MenuItemID: body.MenuItemID,
		Quantity:   1,
		SubTotal:   body.SubTotal,
	}
	if body.Quantity > 0 {
		item.Quantity = body.Quantity
	}

	if err := oic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Invalid order item data"))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order item created", item)
}

// GetOrderItemByID
func (oic *OrderItemController) GetOrderItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.OrderItem
	if err := oic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item detail", item)
}

// UpdateOrderItem -> patch quantity/sub_total
func (oic *OrderItemController) UpdateOrderItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Quantity *int     `json:"quantity"`
		SubTotal *float64 `json:"sub_total"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.OrderItem
	if err := oic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderItemNotFound)
		return
	}

	if body.Quantity != nil {
		item.Quantity = *body.Quantity
	}
	if body.SubTotal != nil {
		item.SubTotal = *body.SubTotal
	}

	if err := oic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item updated", item)
}

// DeleteOrderItem
func (oic *OrderItemController) DeleteOrderItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var item models.OrderItem
	if err := oic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderItemNotFound)
		return
	}
	if err := oic.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order item deleted successfully", nil)
}
