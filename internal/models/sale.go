package models

import "time"

// Sale: Okula yapılan satış. TotalAmount oluşturulurken hesaplanır ve
// sonradan değişmez; PaidAmount ödemelerle artar.
type Sale struct {
	ID          string    `gorm:"primaryKey;size:36"`
	SchoolID    uint      `gorm:"index;not null"`
	SchoolName  string    `gorm:"size:255;not null"` // görüntüleme ve ödeme açıklaması için kopya
	TotalAmount float64   `gorm:"not null"`
	PaidAmount  float64   `gorm:"not null;default:0"`
	Date        time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// SaleItem: Satış kalemi. Ad ve fiyat satış anındaki kopyadır; ürün sonradan
// düzenlense veya silinse bile geçmiş satış tutarları değişmez.
type SaleItem struct {
	ID        uint    `gorm:"primaryKey"`
	SaleID    string  `gorm:"size:36;index;not null"`
	ProductID string  `gorm:"size:36;index;not null"`
	Name      string  `gorm:"size:255;not null"`
	Quantity  int     `gorm:"not null"`
	Price     float64 `gorm:"not null"` // satış anındaki birim fiyat
	CreatedAt time.Time
}

// Remaining: kalan borç
func (s *Sale) Remaining() float64 {
	return s.TotalAmount - s.PaidAmount
}
