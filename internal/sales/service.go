package sales

import (
	"errors"
	"time"

	"okul-satis-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrEmptySelection: okul veya ürün seçilmeden satış oluşturulamaz
	ErrEmptySelection = errors.New("okul veya ürün seçilmedi")
	// ErrInsufficientStock: herhangi bir kalem için stok yetersizse satışın tamamı reddedilir
	ErrInsufficientStock = errors.New("yetersiz stok")
	// ErrInvalidPayment: ödeme tutarı 0'dan büyük ve kalan borçtan küçük/eşit olmalı
	ErrInvalidPayment = errors.New("geçersiz ödeme tutarı")
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

type SaleItemInput struct {
	ProductID string
	Quantity  int
}

// CreateSale: satış oluşturur. Tüm kalemler için stok kontrolü yapılır,
// herhangi biri yetersizse hiçbir kalem işlenmez. Kalem adı ve fiyatı satış
// anında kopyalanır; stok düşümü ve satış kaydı tek transaction içinde yapılır.
func (s *Service) CreateSale(schoolID uint, items []SaleItemInput) (*models.Sale, error) {
	if schoolID == 0 || len(items) == 0 {
		return nil, ErrEmptySelection
	}
	for _, in := range items {
		if in.ProductID == "" || in.Quantity <= 0 {
			return nil, ErrEmptySelection
		}
	}

	var sale models.Sale

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var school models.School
		if err := tx.First(&school, schoolID).Error; err != nil {
			return err
		}

		// Aynı ürün birden fazla kalemde geçebilir; stok kontrolü toplam
		// istenen miktara göre yapılır.
		requested := make(map[string]int)
		saleItems := make([]models.SaleItem, 0, len(items))
		total := 0.0

		for _, in := range items {
			var product models.Product
			if err := tx.First(&product, "id = ?", in.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInsufficientStock
				}
				return err
			}

			requested[product.ID] += in.Quantity
			if requested[product.ID] > product.Stock {
				return ErrInsufficientStock
			}

			saleItems = append(saleItems, models.SaleItem{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  in.Quantity,
				Price:     product.Price,
			})
			total += product.Price * float64(in.Quantity)
		}

		for productID, qty := range requested {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", productID).
				UpdateColumn("stock", gorm.Expr("stock - ?", qty)).Error; err != nil {
				return err
			}
		}

		sale = models.Sale{
			ID:          uuid.NewString(),
			SchoolID:    school.ID,
			SchoolName:  school.Name,
			TotalAmount: total,
			PaidAmount:  0,
			Date:        time.Now(),
			Items:       saleItems,
		}
		return tx.Create(&sale).Error
	})
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// RecordPayment: satışa kısmi ödeme işler. Ödeme tutarı kalan borcu aşamaz.
// PaidAmount güncellemesi ve "Ödeme" kategorili gelir kaydı tek transaction
// içinde yazılır; gelir kaydı RelatedSaleID ile satışa bağlanır.
func (s *Service) RecordPayment(saleID string, amount float64) (*models.Sale, *models.Transaction, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidPayment
	}

	var sale models.Sale
	var payment models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sale, "id = ?", saleID).Error; err != nil {
			return err
		}

		if amount > sale.TotalAmount-sale.PaidAmount {
			return ErrInvalidPayment
		}

		sale.PaidAmount += amount
		if err := tx.Model(&models.Sale{}).
			Where("id = ?", sale.ID).
			Update("paid_amount", sale.PaidAmount).Error; err != nil {
			return err
		}

		payment = models.Transaction{
			ID:            uuid.NewString(),
			Type:          models.TransactionIncome,
			Category:      models.CategoryPayment,
			Description:   sale.SchoolName + " - Satış Ödemesi",
			Amount:        amount,
			Date:          time.Now(),
			RelatedSaleID: &sale.ID,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &sale, &payment, nil
}

// DeleteSale: satışı siler, kalemlerin stoklarını geri verir ve satışa bağlı
// ödeme kayıtlarını kaldırır. Satış yoksa sessizce başarılı döner. Ürün bu
// arada silinmişse o kalemin stok iadesi atlanır.
func (s *Service) DeleteSale(saleID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var sale models.Sale
		if err := tx.Preload("Items").First(&sale, "id = ?", saleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		for _, item := range sale.Items {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Sale{}, "id = ?", sale.ID).Error; err != nil {
			return err
		}
		return tx.Where("related_sale_id = ?", sale.ID).Delete(&models.Transaction{}).Error
	})
}
