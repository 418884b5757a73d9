package models

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `gorm:"type:VARCHAR(20);default:'farmer'" json:"role"` // farmer, buyer, admin
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Cart         Cart      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders       []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time `json:"-"`
}
