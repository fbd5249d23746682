package models

import "time"

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null;index" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	TotalPrice float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_price"`
	Status     string      `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	OrderItems []OrderItem `gorm:"foreignKey:OrderID" json:"-"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}
