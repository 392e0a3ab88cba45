package jobs

import (
	"context"
	"log"
	"time"

	"CarePoint/services"

	"github.com/robfig/cron/v3"
)

// StartNightlyBillSweep schedules the system-wide paid-bill cleanup. The
// DELETE /bills endpoint runs the same sweep on demand; the job makes it a
// regular nightly cleanup instead of something only discharges trigger.
func StartNightlyBillSweep(bills *services.BillService) *cron.Cron {
	c := cron.New()

	// Runs every day at 00:30 AM
	c.AddFunc("30 0 * * *", func() {
		log.Println("Running nightly paid-bill sweep...")
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		removed, err := bills.PurgePaid(ctx)
		if err != nil {
			log.Println("Paid-bill sweep failed:", err)
			return
		}
		log.Printf("Paid-bill sweep removed %d bills", removed)
	})

	c.Start()
	return c
}
