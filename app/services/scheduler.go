package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/database"
)

// StartScheduler starts the background maintenance loop: expired auth
// sessions are purged once an hour.
func StartScheduler(db *sql.DB, driver string) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			n, err := database.DeleteExpiredSessions(db, driver)
			if err != nil {
				log.Printf("Error purging expired sessions: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Purged %d expired sessions", n)
			}
		}
	}()
}
