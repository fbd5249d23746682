package services

import (
	"errors"
	"time"

	"github.com/nextgenfoodcourt/foodcourt-app/models"
	"gorm.io/gorm"
)

const (
	BookingDateLayout = "2006-01-02"
	BookingTimeLayout = "15:04:05"

	ReservationStatusConfirmed = "Confirmed"
)

// Failure classes for the reservation lifecycle. The messages double as the
// wire-level error bodies, so they match what the frontend matches on.
var (
	ErrReservationNotFound = errors.New("Reservation not found")
	ErrTableNotFound       = errors.New("Table not found")
	ErrNewTableNotFound    = errors.New("New table not found")
	ErrTableUnavailable    = errors.New("Table is not available")
	ErrNewTableUnavailable = errors.New("New table is not available")
	ErrInvalidBookingDate  = errors.New("booking_date must be in YYYY-MM-DD format")
	ErrInvalidBookingTime  = errors.New("booking_time must be in HH:MM:SS format")
)

// ReservationService owns the binding between reservations and tables.
// A table's is_available flag is a cache of "no reservation holds this
// table"; every path that changes the binding flips the flag in the same
// transaction, so the two can never be observed out of sync.
type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

type CreateReservationInput struct {
	UserID      uint
	TableID     uint
	BookingDate string
	BookingTime string
	Status      string
	NoOfPeople  int
	OrderID     *uint
}

// UpdateReservationInput is a sparse patch: nil fields are left untouched.
type UpdateReservationInput struct {
	UserID      *uint
	TableID     *uint
	BookingDate *string
	BookingTime *string
	Status      *string
	NoOfPeople  *int
}

// claimTable flips is_available to false, but only if it is still true.
// The conditional single-row UPDATE is what makes check-then-claim safe
// under concurrent requests: of two racing bookings exactly one sees
// RowsAffected == 1. Zero rows affected means the table is either taken
// or gone; the follow-up count tells the two apart.
func claimTable(tx *gorm.DB, tableID uint) error {
	res := tx.Model(&models.Table{}).
		Where("id = ? AND is_available = ?", tableID, true).
		Update("is_available", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.Table{}).Where("id = ?", tableID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrTableNotFound
	}
	return ErrTableUnavailable
}

// releaseTable flips the flag back. A table deleted out-of-band simply
// affects zero rows.
func releaseTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("is_available", true).Error
}

// Create claims the requested table and persists the reservation in one
// transaction. Either both happen or neither does.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	if _, err := time.Parse(BookingDateLayout, in.BookingDate); err != nil {
		return nil, ErrInvalidBookingDate
	}
	if _, err := time.Parse(BookingTimeLayout, in.BookingTime); err != nil {
		return nil, ErrInvalidBookingTime
	}

	status := in.Status
	if status == "" {
		status = ReservationStatusConfirmed
	}
	people := in.NoOfPeople
	if people <= 0 {
		people = 1
	}

	reservation := &models.Reservation{
		UserID:      in.UserID,
		TableID:     in.TableID,
		BookingDate: in.BookingDate,
		BookingTime: in.BookingTime,
		Status:      status,
		NoOfPeople:  people,
		OrderID:     in.OrderID,
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	if err := claimTable(tx, in.TableID); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Create(reservation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

// Update applies a sparse patch. Changing the table is a transfer: the new
// table is claimed, the old one released and the binding rebound, all
// inside the same transaction so no observer sees a half-moved
// reservation.
func (s *ReservationService) Update(id uint, in UpdateReservationInput) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if in.BookingDate != nil {
		if _, err := time.Parse(BookingDateLayout, *in.BookingDate); err != nil {
			return nil, ErrInvalidBookingDate
		}
	}
	if in.BookingTime != nil {
		if _, err := time.Parse(BookingTimeLayout, *in.BookingTime); err != nil {
			return nil, ErrInvalidBookingTime
		}
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if in.TableID != nil && *in.TableID != reservation.TableID {
		if err := claimTable(tx, *in.TableID); err != nil {
			tx.Rollback()
			switch {
			case errors.Is(err, ErrTableNotFound):
				return nil, ErrNewTableNotFound
			case errors.Is(err, ErrTableUnavailable):
				return nil, ErrNewTableUnavailable
			}
			return nil, err
		}
		if err := releaseTable(tx, reservation.TableID); err != nil {
			tx.Rollback()
			return nil, err
		}
		reservation.TableID = *in.TableID
	}

	if in.UserID != nil {
		// Applied without an existence check, like the rest of the patch
		// fields; on MySQL a bad id is rejected by the FK at commit.
		reservation.UserID = *in.UserID
	}
	if in.BookingDate != nil {
		reservation.BookingDate = *in.BookingDate
	}
	if in.BookingTime != nil {
		reservation.BookingTime = *in.BookingTime
	}
	if in.Status != nil {
		reservation.Status = *in.Status
	}
	if in.NoOfPeople != nil {
		reservation.NoOfPeople = *in.NoOfPeople
	}

	if err := tx.Save(&reservation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Delete removes the reservation and releases its table together.
func (s *ReservationService) Delete(id uint) error {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Delete(&reservation).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := releaseTable(tx, reservation.TableID); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// Get returns a single reservation without expanded relations.
func (s *ReservationService) Get(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

// List returns every reservation enriched with user and table summaries
// for display, instead of fully nested records.
func (s *ReservationService) List() ([]models.EnrichedReservation, error) {
	var reservations []models.Reservation
	if err := s.db.Preload("User").Preload("Table").Find(&reservations).Error; err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedReservation, 0, len(reservations))
	for i := range reservations {
		r := reservations[i]
		enriched = append(enriched, models.EnrichedReservation{
			Reservation:  r,
			UserSummary:  r.User.Summary(),
			TableSummary: r.Table.Summary(),
		})
	}
	return enriched, nil
}
