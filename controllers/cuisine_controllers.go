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

var ErrCuisineNotFound = errors.New("Cuisine not found")

type CuisineController struct {
	DB *gorm.DB
}

func NewCuisineController(db *gorm.DB) *CuisineController {
	return &CuisineController{DB: db}
}

// GetAllCuisines
func (cc *CuisineController) GetAllCuisines(c *gin.Context) {
	var cuisines []models.Cuisine
	if err := cc.DB.Find(&cuisines).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All cuisines", cuisines)
}

// CreateCuisine
func (cc *CuisineController) CreateCuisine(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cuisine := models.Cuisine{Name: body.Name}
	if err := cc.DB.Create(&cuisine).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Cuisine created", cuisine)
}

// GetCuisineByID
func (cc *CuisineController) GetCuisineByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cuisine models.Cuisine
	if err := cc.DB.First(&cuisine, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCuisineNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cuisine detail", cuisine)
}

// UpdateCuisine
func (cc *CuisineController) UpdateCuisine(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var cuisine models.Cuisine
	if err := cc.DB.First(&cuisine, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCuisineNotFound)
		return
	}

	if body.Name != nil {
		cuisine.Name = *body.Name
	}
	if err := cc.DB.Save(&cuisine).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cuisine updated", cuisine)
}

// DeleteCuisine
func (cc *CuisineController) DeleteCuisine(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var cuisine models.Cuisine
	if err := cc.DB.First(&cuisine, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrCuisineNotFound)
		return
	}
	if err := cc.DB.Delete(&cuisine).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cuisine deleted successfully", nil)
}
