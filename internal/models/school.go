package models

import "time"

// School: Excel'den toplu yüklenen veya elle eklenen okul kaydı.
// Kolon adları Excel başlıklarıyla birebir aynı (IL_ADI, ILCE_ADI, ...).
type School struct {
	ID        uint   `gorm:"primaryKey"`
	Province  string `gorm:"size:100;not null"`       // IL_ADI
	District  string `gorm:"size:100;index;not null"` // ILCE_ADI
	Name      string `gorm:"size:255;index;not null"` // OKUL_ADI
	Address   string `gorm:"size:500"`                // ADRES
	Phone     string `gorm:"size:50"`                 // TELEFON
	Website   string `gorm:"size:255"`                // WEB_ADRES
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SchoolNote: Okul kartına eklenen notlar (sadece ekle + tek tek sil)
type SchoolNote struct {
	ID        uint `gorm:"primaryKey"`
	SchoolID  uint `gorm:"index;not null"`
	School    School
	Content   string `gorm:"size:1000;not null"`
	CreatedAt time.Time
}
