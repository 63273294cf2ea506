package models

import "time"

type Product struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"size:255;not null"`
	Description string  `gorm:"size:500"`
	Price       float64 `gorm:"not null"` // birim fiyat
	Stock       int     `gorm:"not null"` // adet; hiçbir zaman negatif olamaz
	Category    string  `gorm:"size:100"`
	SKU         string  `gorm:"size:50;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStockThreshold: bu değerin altındaki stoklar düşük stok olarak işaretlenir
const LowStockThreshold = 10
