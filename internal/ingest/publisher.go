package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	scoreQueueKey = "score_jobs"
)

// ScoreJob — задание на скоринг одного репорта. Репорты обрабатываются
// независимо: падение одного задания не влияет на соседние
type ScoreJob struct {
	ReportID   uuid.UUID `json:"report_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// Publisher - интерфейс для постановки заданий скоринга в очередь
type Publisher interface {
	Publish(ctx context.Context, job ScoreJob) error
}

// RedisPublisher - реализация Publisher, использующая список Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет задание скоринга в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, job ScoreJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal score job: %w", err)
	}

	// LPUSH в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, scoreQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish score job to Redis: %w", err)
	}
	return nil
}
