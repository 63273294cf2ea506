package activity

import (
	"fmt"
	"sort"
	"time"

	"okul-satis-backend/internal/models"
)

// Entry: satış, randevu ve muhasebe kayıtlarından türetilen tek akış satırı.
// Hiçbir yerde saklanmaz, her okumada yeniden hesaplanır.
type Entry struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`   // "sale" | "appointment" | "transaction"
	Action      string    `json:"action"` // Satış / Randevu / Gelir / Gider
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"` // pending | completed | cancelled
}

// Build: üç koleksiyonu tek kronolojik akışa indirger, en yeni kayıt başta.
// Satış: kalan borç varsa pending, yoksa completed. Randevu: kendi durumu.
// Muhasebe kaydı: her zaman completed.
func Build(sales []models.Sale, appointments []models.Appointment, transactions []models.Transaction) []Entry {
	entries := make([]Entry, 0, len(sales)+len(appointments)+len(transactions))

	for _, sale := range sales {
		status := "completed"
		if sale.Remaining() > 0 {
			status = "pending"
		}
		entries = append(entries, Entry{
			ID:          sale.ID,
			Type:        "sale",
			Action:      "Satış",
			Description: fmt.Sprintf("%s - Toplam: ₺%.2f", sale.SchoolName, sale.TotalAmount),
			Date:        sale.Date,
			Status:      status,
		})
	}

	for _, appt := range appointments {
		date, err := time.Parse("2006-01-02T15:04", appt.Date+"T"+appt.Time)
		if err != nil {
			date, _ = time.Parse("2006-01-02", appt.Date)
		}
		entries = append(entries, Entry{
			ID:          appt.ID,
			Type:        "appointment",
			Action:      "Randevu",
			Description: fmt.Sprintf("%s - %s", appt.SchoolName, appt.Title),
			Date:        date,
			Status:      string(appt.Status),
		})
	}

	for _, trx := range transactions {
		action := "Gider"
		if trx.Type == models.TransactionIncome {
			action = "Gelir"
		}
		entries = append(entries, Entry{
			ID:          trx.ID,
			Type:        "transaction",
			Action:      action,
			Description: fmt.Sprintf("%s - ₺%.2f", trx.Category, trx.Amount),
			Date:        trx.Date,
			Status:      "completed",
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	return entries
}

// FilterByStatus: "all" her şeyi geçirir, aksi halde tam durum eşleşmesi.
func FilterByStatus(entries []Entry, status string) []Entry {
	if status == "" || status == "all" {
		return entries
	}
	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.Status == status {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
