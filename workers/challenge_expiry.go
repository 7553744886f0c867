package workers

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"ranking-league-system/models"
	"ranking-league-system/services"

	"github.com/go-co-op/gocron/v2"
)

// ChallengeExpiryWorker cancels PENDING challenges whose requested play time
// passed longer than the grace period ago without a response.
type ChallengeExpiryWorker struct {
	challenges services.ChallengeRepository
	interval   time.Duration
	grace      time.Duration
}

func NewChallengeExpiryWorker(challenges services.ChallengeRepository) *ChallengeExpiryWorker {
	return &ChallengeExpiryWorker{
		challenges: challenges,
		interval:   durationEnv("CHALLENGE_EXPIRY_INTERVAL_MINUTES", 5) * time.Minute,
		grace:      durationEnv("CHALLENGE_EXPIRY_GRACE_HOURS", 24) * time.Hour,
	}
}

func durationEnv(name string, fallback int) time.Duration {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
		log.Printf("⚠️  invalid %s=%q, using default %d", name, v, fallback)
	}
	return time.Duration(fallback)
}

// Start runs the sweep on the configured interval until ctx is canceled.
func (w *ChallengeExpiryWorker) Start(ctx context.Context) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("failed to create expiry scheduler: %v", err)
		return
	}

	_, _ = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.Sweep),
	)
	sched.Start()

	go func() {
		<-ctx.Done()
		if err := sched.Shutdown(); err != nil {
			log.Printf("expiry scheduler shutdown: %v", err)
		}
	}()
}

// Sweep cancels every pending challenge past its grace window. Individual
// update failures are logged and do not stop the sweep.
func (w *ChallengeExpiryWorker) Sweep() {
	cutoff := time.Now().Add(-w.grace)

	challenges, err := w.challenges.ListAll()
	if err != nil {
		log.Printf("[Expiry] failed to list challenges: %v", err)
		return
	}

	expired := 0
	for i := range challenges {
		c := &challenges[i]
		if c.Status != models.ChallengePending || !c.ChallengeTime.Before(cutoff) {
			continue
		}
		c.Status = models.ChallengeCanceled
		if err := w.challenges.Update(c); err != nil {
			log.Printf("[Expiry] failed to cancel challenge %s: %v", c.ID, err)
			continue
		}
		expired++
	}
	if expired > 0 {
		log.Printf("[Expiry] canceled %d expired challenge(s)", expired)
	}
}
