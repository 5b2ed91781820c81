package models

import "time"

// An Ingredient is one row of a user's kitchen inventory.
type Ingredient struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"not null" json:"name"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	Unit      string    `gorm:"not null" json:"unit"`
	Category  string    `gorm:"not null" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}
