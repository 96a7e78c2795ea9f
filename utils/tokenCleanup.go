package utils

import (
	"log"
	"time"

	"madrasa/store"

	"github.com/robfig/cron/v3"
)

// InitializeTokenCleanup starts the daily purge of expired refresh tokens.
// Returns the scheduler so the caller can stop it on shutdown.
func InitializeTokenCleanup(s *store.Store) *cron.Cron {
	c := cron.New()

	// Run daily at 03:00
	c.AddFunc("0 3 * * *", func() {
		purged, err := s.PurgeExpiredRefreshTokens(time.Now())
		if err != nil {
			log.Printf("[TOKEN-CLEANUP] Error purging expired refresh tokens: %v", err)
			return
		}
		log.Printf("[TOKEN-CLEANUP] Purged %d expired refresh tokens", purged)
	})

	c.Start()
	log.Println("[TOKEN-CLEANUP] Token cleanup scheduler started - runs daily at 03:00")
	return c
}
