package models

import "time"

// Table is a physically exclusive seat group inside an outlet. Status is
// free-text operational state ("available"/"occupied"/...). IsAvailable is
// the reservation claim flag and is written only by the reservation service;
// table PATCH handlers must never touch it.
type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OutletID    uint      `gorm:"not null;index" json:"outlet_id"`
	Outlet      Outlet    `gorm:"foreignKey:OutletID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TableNumber int       `gorm:"not null" json:"table_number"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Status      string    `gorm:"type:varchar(50);not null;default:'available'" json:"status"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableSummary is the reduced view embedded in reservation lists.
type TableSummary struct {
	ID          uint `json:"id"`
	OutletID    uint `json:"outlet_id"`
	TableNumber int  `json:"table_number"`
	Capacity    int  `json:"capacity"`
}

func (t *Table) Summary() TableSummary {
	return TableSummary{
		ID:          t.ID,
		OutletID:    t.OutletID,
		TableNumber: t.TableNumber,
		Capacity:    t.Capacity,
	}
}
