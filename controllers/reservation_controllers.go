package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nextgenfoodcourt/foodcourt-app/services"
	"github.com/nextgenfoodcourt/foodcourt-app/utils"
	"gorm.io/gorm"
)

// ReservationController is a thin HTTP layer over the reservation service,
// which owns all table claim/release logic.
type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{Service: services.NewReservationService(db)}
}

// reservationErrorStatus maps service failures onto HTTP statuses.
// Malformed date/time is 422 rather than the legacy 500 so clients can
// tell their own mistakes from server faults.
func reservationErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrNewTableNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrTableUnavailable),
		errors.Is(err, services.ErrNewTableUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidBookingDate),
		errors.Is(err, services.ErrInvalidBookingTime):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// GetAllReservations -> list enriched with user and table summaries
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	reservations, err := rc.Service.List()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All reservations", reservations)
}

// CreateReservation -> claim a table
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var body struct {
		UserID      uint   `json:"user_id" binding:"required"`
		TableID     uint   `json:"table_id" binding:"required"`
		BookingDate string `json:"booking_date" binding:"required"`
		BookingTime string `json:"booking_time" binding:"required"`
		Status      string `json:"status"`
		NoOfPeople  int    `json:"no_of_people"`
		OrderID     *uint  `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Create(services.CreateReservationInput{
		UserID:      body.UserID,
		TableID:     body.TableID,
		BookingDate: body.BookingDate,
		BookingTime: body.BookingTime,
		Status:      body.Status,
		NoOfPeople:  body.NoOfPeople,
		OrderID:     body.OrderID,
	})
	if err != nil {
		utils.RespondError(c, reservationErrorStatus(err), err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created: table %d on %s %s",
		reservation.ID, reservation.TableID, reservation.BookingDate, reservation.BookingTime)
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetReservationByID
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	reservation, err := rc.Service.Get(uint(id))
	if err != nil {
		utils.RespondError(c, reservationErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> sparse patch; changing table_id transfers the claim
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		UserID      *uint   `json:"user_id"`
		TableID     *uint   `json:"table_id"`
		BookingDate *string `json:"booking_date"`
		BookingTime *string `json:"booking_time"`
		Status      *string `json:"status"`
		NoOfPeople  *int    `json:"no_of_people"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.Update(uint(id), services.UpdateReservationInput{
		UserID:      body.UserID,
		TableID:     body.TableID,
		BookingDate: body.BookingDate,
		BookingTime: body.BookingTime,
		Status:      body.Status,
		NoOfPeople:  body.NoOfPeople,
	})
	if err != nil {
		utils.RespondError(c, reservationErrorStatus(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> release the table
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := rc.Service.Delete(uint(id)); err != nil {
		utils.RespondError(c, reservationErrorStatus(err), err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", id)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted successfully", nil)
}
