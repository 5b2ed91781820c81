package models

import "time"

type User struct {
	ID                     uint      `gorm:"primarykey" json:"id"`
	Username               string    `gorm:"uniqueIndex;not null" json:"username"`
	Password               string    `gorm:"not null" json:"-"`
	HasCompletedOnboarding bool      `gorm:"not null;default:false" json:"hasCompletedOnboarding"`
	CreatedAt              time.Time `json:"createdAt"`
}
