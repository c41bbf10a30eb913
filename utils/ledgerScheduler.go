package utils

import (
	"log"

	"vestpay/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitializeLedgerScheduler starts a daily job that logs how much of
// the ledger is waiting on admin review. Pure read — claim eligibility
// itself is evaluated lazily at request time, never by a job.
func InitializeLedgerScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 9 * * *", func() {
		logPendingSummary(db)
	})
	if err != nil {
		log.Printf("Error scheduling ledger summary: %v", err)
		return c
	}

	c.Start()
	log.Println("Ledger summary scheduler started (daily at 09:00).")
	return c
}

func logPendingSummary(db *gorm.DB) {
	type row struct {
		Type  models.TransactionType
		Count int64
		Total float64
	}

	var rows []row
	err := db.Model(&models.Transaction{}).
		Select("type, COUNT(*) as count, COALESCE(SUM(amount), 0) as total").
		Where("status = ?", models.TransactionStatusPending).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Error building pending summary: %v", err)
		return
	}

	if len(rows) == 0 {
		log.Println("Ledger summary: no pending transactions.")
		return
	}
	for _, r := range rows {
		log.Printf("Ledger summary: %d pending %s totalling %.2f", r.Count, r.Type, r.Total)
	}
}
