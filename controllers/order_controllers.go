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

var ErrOrderNotFound = errors.New("Order not found")

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// enrichedOrder pairs an order with a display summary of its user.
type enrichedOrder struct {
	models.Order
	UserSummary models.UserSummary `json:"user"`
}

// GetAllOrders -> list orders with user summaries
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Preload("User").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	enriched := make([]enrichedOrder, 0, len(orders))
	for i := range orders {
		enriched = append(enriched, enrichedOrder{
			Order:       orders[i],
			UserSummary: orders[i].User.Summary(),
		})
	}
	utils.RespondJSON(c, http.StatusOK, "All orders", enriched)
}

// CreateOrder
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body struct {
		UserID     uint    `json:"user_id" binding:"required"`
		TotalPrice float64 `json:"total_price" binding:"required"`
		Status     string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order := models.Order{
		UserID:     body.UserID,
		TotalPrice: body.TotalPrice,
		Status:     "pending",
	}
	if body.Status != "" {
		order.Status = body.Status
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Order already exists or invalid data"))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderByID
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrder -> patch status/total_price
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Status     *string  `json:"status"`
		TotalPrice *float64 `json:"total_price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	if body.Status != nil {
		order.Status = *body.Status
	}
	if body.TotalPrice != nil {
		order.TotalPrice = *body.TotalPrice
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}
	if err := oc.DB.Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted successfully", nil)
}
