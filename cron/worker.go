package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"fixora/config"
	"fixora/models"
	"fixora/services/availability"
	"fixora/utils"

	"github.com/hibiken/asynq"
)

const TypeAvailabilityWarm = "availability:warm"

// warmPayload identifies one (category, date, slot) cell to precompute.
type warmPayload struct {
	CategoryID string `json:"categoryId"`
	Date       string `json:"date"`
	SlotLabel  string `json:"slotLabel"`
}

// InitWarmWorker runs the cache-warming worker in background. It recomputes
// availability for the configured hot categories so the first app open of the
// day hits a warm cache instead of a cold fan-out.
func InitWarmWorker(svc availability.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAvailabilityWarm, handleWarmTask(svc))

	go func() {
		log.Println("[WarmWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[WarmWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[WarmWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go enqueueWarmups(redisOpts)
}

func handleWarmTask(svc availability.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p warmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[WarmWorker] invalid payload: %v", err)
			return err
		}

		query := models.MatchQuery{
			CategoryID: p.CategoryID,
			Date:       p.Date,
			SlotLabel:  p.SlotLabel,
		}
		result, err := svc.FindAvailableOffers(ctx, query)
		if err != nil {
			// Retryable scope errors get re-queued by asynq; anything else is dropped.
			if availability.IsRetryable(err) {
				return err
			}
			log.Printf("[WarmWorker] warm query rejected: %v", err)
			return nil
		}

		data, err := json.Marshal(result)
		if err != nil {
			return err
		}
		cacheKey := utils.OfferCachePrefix + utils.QueryFingerprint(query)
		return utils.GetCacheClient().Set(ctx, cacheKey, data, utils.OfferCacheTTL).Err()
	}
}

// enqueueWarmups periodically schedules one warm task per hot category and
// slot template for today.
func enqueueWarmups(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := time.Duration(config.AppConfig.WarmIntervalMins) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ; ; <-ticker.C {
		date := time.Now().Format("2006-01-02")
		for _, categoryID := range config.AppConfig.WarmCategories {
			for _, slotLabel := range config.AppConfig.SlotTemplates {
				payload, err := json.Marshal(warmPayload{
					CategoryID: categoryID,
					Date:       date,
					SlotLabel:  slotLabel,
				})
				if err != nil {
					continue
				}
				task := asynq.NewTask(TypeAvailabilityWarm, payload)
				if _, err := client.Enqueue(task, asynq.MaxRetry(2)); err != nil {
					log.Printf("[WarmWorker] enqueue failed: %v", err)
				}
			}
		}
	}
}
