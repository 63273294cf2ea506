package models

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// CategoryPayment: Satış ödemesi işlemlerinin ayrılmış kategorisi.
// Bu kategorideki gelir kayıtları silinirse ilgili satışın PaidAmount'u geri alınır.
const CategoryPayment = "Ödeme"

// Transaction: Gelir/gider kaydı. Elle girilir veya satış ödemesiyle
// otomatik oluşur. Otomatik kayıtlarda RelatedSaleID doludur; elle
// girilenlerde boştur.
type Transaction struct {
	ID            string          `gorm:"primaryKey;size:36"`
	Type          TransactionType `gorm:"size:10;not null;index"`
	Category      string          `gorm:"size:100;not null"`
	Description   string          `gorm:"size:500"`
	Amount        float64         `gorm:"not null"`
	Date          time.Time       `gorm:"index;not null"` // oluşturulduktan sonra değişmez
	RelatedSaleID *string         `gorm:"size:36;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
