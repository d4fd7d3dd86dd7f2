package cron

import (
	"encoding/json"
	"log"

	"clinicore/config"
	"clinicore/models"

	"github.com/hibiken/asynq"
	cronv3 "github.com/robfig/cron/v3"
)

// NewSweepTask builds the asynq task for one sweep kind.
func NewSweepTask(kind models.SweepKind) (*asynq.Task, error) {
	b, err := json.Marshal(models.SweepPayload{Kind: kind})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReminderSweep, b), nil
}

// InitSweepScheduler enqueues the three reminder sweeps on the configured
// cron spec. Returns the scheduler so main can stop it on shutdown.
func InitSweepScheduler() *cronv3.Cron {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	kinds := []models.SweepKind{models.Sweep24Hour, models.Sweep1Hour, models.SweepFollowUp}

	c := cronv3.New()
	_, err := c.AddFunc(config.AppConfig.ReminderCronSpec, func() {
		for _, kind := range kinds {
			task, err := NewSweepTask(kind)
			if err != nil {
				log.Printf("[SweepScheduler] Could not build %s task: %v", kind, err)
				continue
			}
			if _, err := client.Enqueue(task); err != nil {
				log.Printf("[SweepScheduler] Could not enqueue %s sweep: %v", kind, err)
			}
		}
	})
	if err != nil {
		log.Fatalf("[SweepScheduler] Invalid cron spec %q: %v", config.AppConfig.ReminderCronSpec, err)
	}

	c.Start()
	log.Printf("[SweepScheduler] Scheduled reminder sweeps with spec %q", config.AppConfig.ReminderCronSpec)
	return c
}
