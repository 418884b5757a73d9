package models

import "time"

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"type:VARCHAR(50);index" json:"category"` // fertilizer, pesticide, seed, tool, equipment
	Price       float64   `gorm:"not null" json:"price"`
	Unit        string    `json:"unit"`
	Description string    `json:"description"`
	Image       string    `gorm:"default:'📦'" json:"image"` // Emoji icon
	Stock       int       `gorm:"default:0" json:"stock"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	Reviews     int       `gorm:"default:0" json:"reviews"`
	Seller      string    `json:"seller"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
