package models

import (
	"time"

	"github.com/google/uuid"
)

// FloodReport — один ингестированный пост из соцсети; после создания не изменяется
type FloodReport struct {
	ID           uuid.UUID `json:"id"`
	Text         string    `json:"text"`
	ReportedAt   time.Time `json:"reported_at"`
	LocationHint string    `json:"location_hint,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AnalysisResult — результат NLP-анализа репорта; создаётся внешним
// коллаборатором, ядро читает его только на чтение
type AnalysisResult struct {
	ID             uuid.UUID `json:"id"`
	ReportID       uuid.UUID `json:"report_id"`
	FloodDetected  bool      `json:"flood_detected"`
	UrgencyScore   int       `json:"urgency_score"` // 1..10
	ExtractedState string    `json:"extracted_state,omitempty"`
	ExtractedCity  string    `json:"extracted_city,omitempty"`
	ProcessedAt    time.Time `json:"processed_at"`
}
