package services

import (
	"database/sql"
	"log"
	"time"

	"platforme-educatif/app/database"
	"platforme-educatif/app/ledger"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger shortly after midnight
			if now.Hour() == 0 && now.Minute() == 10 {
				log.Println("Triggering scheduled tasks [00:10]...")

				if err := RefreshOverdueStatuses(db); err != nil {
					log.Printf("Error refreshing overdue statuses: %v", err)
				}
			}
		}
	}()
}

// RefreshOverdueStatuses walks the current year's ledgers and persists any
// installments that crossed their due date plus grace period since the last
// pass. Keeps stored statuses consistent without waiting for a payment event.
func RefreshOverdueStatuses(db *sql.DB) error {
	year, err := database.GetCurrentAcademicYear(db)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Println("No current academic year; skipping overdue refresh")
			return nil
		}
		return err
	}

	ledgers, err := database.ListLedgers(db, year.ID, "", "")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	updated := 0
	for _, sp := range ledgers {
		if !ledger.Reclassify(sp, now) {
			continue
		}
		if err := database.UpdateLedger(db, sp); err != nil {
			log.Printf("Failed to persist status refresh for ledger %s: %v", sp.ID, err)
			continue
		}
		updated++
	}
	log.Printf("Overdue refresh done: %d of %d ledgers updated", updated, len(ledgers))
	return nil
}
