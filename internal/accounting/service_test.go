package accounting

import (
	"fmt"
	"testing"
	"time"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedSale(t *testing.T, db *gorm.DB, total, paid float64) models.Sale {
	sale := models.Sale{
		ID:          uuid.NewString(),
		SchoolID:    1,
		SchoolName:  "Atatürk İlkokulu",
		TotalAmount: total,
		PaidAmount:  paid,
		Date:        time.Now(),
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("seed sale: %v", err)
	}
	return sale
}

func seedPaymentTransaction(t *testing.T, db *gorm.DB, saleID string, amount float64) models.Transaction {
	trx := models.Transaction{
		ID:            uuid.NewString(),
		Type:          models.TransactionIncome,
		Category:      models.CategoryPayment,
		Description:   "Atatürk İlkokulu - Satış Ödemesi",
		Amount:        amount,
		Date:          time.Now(),
		RelatedSaleID: &saleID,
	}
	if err := db.Create(&trx).Error; err != nil {
		t.Fatalf("seed payment transaction: %v", err)
	}
	return trx
}

func TestDeletePaymentTransactionReversesPaidAmount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	sale := seedSale(t, db, 100, 40)
	trx := seedPaymentTransaction(t, db, sale.ID, 40)

	if err := svc.DeleteTransaction(trx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded models.Sale
	if err := db.First(&reloaded, "id = ?", sale.ID).Error; err != nil {
		t.Fatalf("load sale: %v", err)
	}
	if reloaded.PaidAmount != 0 {
		t.Fatalf("expected paid 0 got %v", reloaded.PaidAmount)
	}

	var count int64
	db.Model(&models.Transaction{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected transaction removed got %d", count)
	}
}

func TestDeletePaymentTransactionFloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	// ödeme tutarı mevcut paidAmount'tan büyük: 0'ın altına inmemeli
	sale := seedSale(t, db, 100, 10)
	trx := seedPaymentTransaction(t, db, sale.ID, 40)

	if err := svc.DeleteTransaction(trx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded models.Sale
	db.First(&reloaded, "id = ?", sale.ID)
	if reloaded.PaidAmount != 0 {
		t.Fatalf("expected paid floored at 0 got %v", reloaded.PaidAmount)
	}
}

func TestDeleteManualTransactionLeavesSalesAlone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	sale := seedSale(t, db, 100, 40)
	manual := models.Transaction{
		ID:       uuid.NewString(),
		Type:     models.TransactionIncome,
		Category: "Bağış",
		Amount:   40,
		Date:     time.Now(),
	}
	if err := db.Create(&manual).Error; err != nil {
		t.Fatalf("seed manual: %v", err)
	}

	if err := svc.DeleteTransaction(manual.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded models.Sale
	db.First(&reloaded, "id = ?", sale.ID)
	if reloaded.PaidAmount != 40 {
		t.Fatalf("manual delete touched sale: %v", reloaded.PaidAmount)
	}
}

func TestDeleteExpensePaymentCategoryDoesNotReverse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	// "Ödeme" kategorili ama gider tipinde: geri alma tetiklenmez
	sale := seedSale(t, db, 100, 40)
	trx := models.Transaction{
		ID:            uuid.NewString(),
		Type:          models.TransactionExpense,
		Category:      models.CategoryPayment,
		Amount:        40,
		Date:          time.Now(),
		RelatedSaleID: &sale.ID,
	}
	if err := db.Create(&trx).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := svc.DeleteTransaction(trx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var reloaded models.Sale
	db.First(&reloaded, "id = ?", sale.ID)
	if reloaded.PaidAmount != 40 {
		t.Fatalf("expense delete touched sale: %v", reloaded.PaidAmount)
	}
}

func TestDeleteTransactionMissingIsNoop(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	if err := svc.DeleteTransaction(uuid.NewString()); err != nil {
		t.Fatalf("expected silent no-op got %v", err)
	}
}

func TestDeletePaymentTransactionWithVanishedSale(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	trx := seedPaymentTransaction(t, db, uuid.NewString(), 40)

	if err := svc.DeleteTransaction(trx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var count int64
	db.Model(&models.Transaction{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected transaction removed got %d", count)
	}
}

func TestSummarize(t *testing.T) {
	rows := []models.Transaction{
		{Type: models.TransactionIncome, Amount: 100},
		{Type: models.TransactionIncome, Amount: 50},
		{Type: models.TransactionExpense, Amount: 30},
	}

	sum := Summarize(rows)
	if sum.TotalIncome != 150 {
		t.Fatalf("expected income 150 got %v", sum.TotalIncome)
	}
	if sum.TotalExpense != 30 {
		t.Fatalf("expected expense 30 got %v", sum.TotalExpense)
	}
	if sum.Balance != 120 {
		t.Fatalf("expected balance 120 got %v", sum.Balance)
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, time.August, 29, 15, 30, 0, 0, time.UTC)

	start, ok := PeriodStart("month", now)
	if !ok || !start.Equal(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected month start %v %v", start, ok)
	}

	start, ok = PeriodStart("year", now)
	if !ok || !start.Equal(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected year start %v %v", start, ok)
	}

	if _, ok := PeriodStart("all", now); ok {
		t.Fatalf("expected no bound for 'all'")
	}
}
