package models

import "time"

type Outlet struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);unique;not null" json:"name"`
	Contact     string    `gorm:"type:varchar(50)" json:"contact"`
	ImgURL      string    `gorm:"type:varchar(500)" json:"img_url"`
	Description string    `gorm:"type:text" json:"description"`
	CuisineID   uint      `gorm:"not null;index" json:"cuisine_id"`
	Cuisine     Cuisine   `gorm:"foreignKey:CuisineID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	Owner       User      `gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
