package models

import "time"

// Reservation binds a user to a table for a date and time slot. While a
// reservation row exists its table's IsAvailable flag is false; the binding
// and the flag only ever change together inside one transaction.
type Reservation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TableID     uint      `gorm:"not null;index" json:"table_id"`
	Table       Table     `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	BookingDate string    `gorm:"type:varchar(10);not null" json:"booking_date"`
	BookingTime string    `gorm:"type:varchar(8);not null" json:"booking_time"`
	Status      string    `gorm:"type:varchar(50);not null;default:'Confirmed'" json:"status"`
	NoOfPeople  int       `gorm:"not null;default:1" json:"no_of_people"`
	OrderID     *uint     `gorm:"index" json:"order_id,omitempty"`
	Order       *Order    `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// EnrichedReservation is the list projection: the reservation plus display
// summaries of its user and table instead of full nested records.
type EnrichedReservation struct {
	Reservation
	UserSummary  UserSummary  `json:"user"`
	TableSummary TableSummary `json:"table"`
}
