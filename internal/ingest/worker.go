package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Scorer — потребительский контракт воркера: достаточно уметь посчитать
// оценку по идентификатору репорта
type Scorer interface {
	ScoreReport(ctx context.Context, reportID uuid.UUID) (*models.RiskAssessment, error)
}

// ScoreWorker - воркер, обрабатывающий очередь заданий скоринга
type ScoreWorker struct {
	redisClient *redis.Client
	scorer      Scorer
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewScoreWorker создает новый ScoreWorker
func NewScoreWorker(redisClient *redis.Client, scorer Scorer, logger *logrus.Logger, cfg *config.Config) *ScoreWorker {
	return &ScoreWorker{
		redisClient: redisClient,
		scorer:      scorer,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину для обработки очереди скоринга
func (w *ScoreWorker) Start(ctx context.Context) {
	w.logger.Info("Starting score worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping score worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, scoreQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop score job from Redis")
					time.Sleep(w.cfg.ScoreBaseDelay)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var job ScoreJob
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal score job from Redis")
					continue
				}

				w.processJob(ctx, job)
			}
		}
	}()
}

// processJob скорит один репорт с ограниченным числом повторов.
// Ошибки изолированы в рамках задания и не останавливают очередь
func (w *ScoreWorker) processJob(ctx context.Context, job ScoreJob) {
	log := w.logger.WithField("report_id", job.ReportID)
	log.Debug("Processing score job...")

	maxRetries := w.cfg.ScoreMaxRetries
	delay := w.cfg.ScoreBaseDelay

	for i := 0; i < maxRetries; i++ {
		assessment, err := w.scorer.ScoreReport(ctx, job.ReportID)
		if err == nil {
			if assessment == nil {
				log.Info("Score job finished, report not scorable")
			} else {
				log.WithFields(logrus.Fields{
					"final_score": assessment.FinalScore,
					"risk_level":  assessment.RiskLevel,
				}).Info("Score job completed successfully")
			}
			return
		}

		if errors.Is(err, models.ErrInvalidInput) {
			// Невалидный вход не станет валидным от повтора
			log.WithError(err).Error("Score job rejected, not retrying")
			return
		}

		log.WithError(err).Warnf("Score job failed. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		time.Sleep(delay)
		delay *= 2 // Экспоненциальная задержка
	}

	log.Errorf("Failed to score report after %d retries.", maxRetries)
}
