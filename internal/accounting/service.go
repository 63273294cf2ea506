package accounting

import (
	"errors"
	"time"

	"okul-satis-backend/internal/models"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// DeleteTransaction: işlemi siler. Otomatik oluşmuş bir satış ödemesiyse
// (gelir + "Ödeme" kategorisi + RelatedSaleID dolu) önce ilgili satışın
// PaidAmount'u ödeme tutarı kadar geri alınır, 0'ın altına inmez. Satış bu
// arada silinmişse geri alma atlanır. İşlem yoksa sessizce başarılı döner.
func (s *Service) DeleteTransaction(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var trx models.Transaction
		if err := tx.First(&trx, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		isPayment := trx.Type == models.TransactionIncome &&
			trx.Category == models.CategoryPayment &&
			trx.RelatedSaleID != nil

		if isPayment {
			var sale models.Sale
			err := tx.First(&sale, "id = ?", *trx.RelatedSaleID).Error
			if err == nil {
				paid := sale.PaidAmount - trx.Amount
				if paid < 0 {
					paid = 0
				}
				if err := tx.Model(&models.Sale{}).
					Where("id = ?", sale.ID).
					Update("paid_amount", paid).Error; err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		return tx.Delete(&models.Transaction{}, "id = ?", id).Error
	})
}

// -------------------------
// Özet (saf hesaplama)
// -------------------------

type Summary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}

func Summarize(transactions []models.Transaction) Summary {
	var sum Summary
	for _, trx := range transactions {
		switch trx.Type {
		case models.TransactionIncome:
			sum.TotalIncome += trx.Amount
		case models.TransactionExpense:
			sum.TotalExpense += trx.Amount
		}
	}
	sum.Balance = sum.TotalIncome - sum.TotalExpense
	return sum
}

// PeriodStart: "month" ve "year" filtreleri için alt sınırı döner.
// "all" (veya boş) için filtre yok demektir.
func PeriodStart(period string, now time.Time) (time.Time, bool) {
	switch period {
	case "month":
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	case "year":
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}
