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

var ErrOutletNotFound = errors.New("Outlet not found")

type OutletController struct {
	DB *gorm.DB
}

func NewOutletController(db *gorm.DB) *OutletController {
	return &OutletController{DB: db}
}

// GetAllOutlets
func (oc *OutletController) GetAllOutlets(c *gin.Context) {
	var outlets []models.Outlet
	if err := oc.DB.Find(&outlets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All outlets", outlets)
}

// CreateOutlet
func (oc *OutletController) CreateOutlet(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Contact     string `json:"contact" binding:"required"`
		ImgURL      string `json:"img_url"`
		Description string `json:"description"`
		CuisineID   uint   `json:"cuisine_id" binding:"required"`
		OwnerID     uint   `json:"owner_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	outlet := models.Outlet{
		Name:        body.Name,
		Contact:     body.Contact,
		ImgURL:      body.ImgURL,
		Description: body.Description,
		CuisineID:   body.CuisineID,
		OwnerID:     body.OwnerID,
	}
	if err := oc.DB.Create(&outlet).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("Outlet already exists or invalid data"))
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Outlet created", outlet)
}

// GetOutletByID
func (oc *OutletController) GetOutletByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var outlet models.Outlet
	if err := oc.DB.First(&outlet, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOutletNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Outlet detail", outlet)
}

// UpdateOutlet
func (oc *OutletController) UpdateOutlet(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Name        *string `json:"name"`
		Contact     *string `json:"contact"`
		ImgURL      *string `json:"img_url"`
		Description *string `json:"description"`
		CuisineID   *uint   `json:"cuisine_id"`
		OwnerID     *uint   `json:"owner_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var outlet models.Outlet
	if err := oc.DB.First(&outlet, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOutletNotFound)
		return
	}

	if body.Name != nil {
		outlet.Name = *body.Name
	}
	if body.Contact != nil {
		outlet.Contact = *body.Contact
	}
	if body.ImgURL != nil {
		outlet.ImgURL = *body.ImgURL
	}
	if body.Description != nil {
		outlet.Description = *body.Description
	}
	if body.CuisineID != nil {
		outlet.CuisineID = *body.CuisineID
	}
	if body.OwnerID != nil {
		outlet.OwnerID = *body.OwnerID
	}

	if err := oc.DB.Save(&outlet).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Outlet updated", outlet)
}

// DeleteOutlet
func (oc *OutletController) DeleteOutlet(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var outlet models.Outlet
	if err := oc.DB.First(&outlet, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOutletNotFound)
		return
	}
	if err := oc.DB.Delete(&outlet).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Outlet deleted successfully", nil)
}
