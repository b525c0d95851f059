package models

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel — категориальный уровень риска
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Weight возвращает монотонный вес уровня для ранжирования маршрутов
func (l RiskLevel) Weight() int {
	switch l {
	case RiskLow:
		return 1
	case RiskModerate:
		return 2
	case RiskHigh:
		return 3
	case RiskCritical:
		return 4
	}
	return 0
}

// Valid проверяет, что уровень принадлежит известному набору
func (l RiskLevel) Valid() bool {
	return l.Weight() > 0
}

// WarningObservation — официальное метеопредупреждение по округу за дату.
// Уровень 0 означает "нет активного предупреждения"; отсутствие строки
// означает "нет данных" — это разные состояния
type WarningObservation struct {
	ID           int64     `json:"id"`
	ReportID     uuid.UUID `json:"report_id,omitempty"`
	DistrictID   string    `json:"district_id"`
	WarningLevel int       `json:"warning_level"` // 0..4
	RainfallMM   *float64  `json:"rainfall_mm,omitempty"`
	TemperatureC *float64  `json:"temperature_c,omitempty"`
	ObservedOn   time.Time `json:"observed_on"`
	CreatedAt    time.Time `json:"created_at"`
}

// RiskAssessment — итог скоринга репорта; на один репорт существует
// не более одной актуальной оценки (повторный расчёт перезаписывает)
type RiskAssessment struct {
	ID             int64     `json:"id"`
	ReportID       uuid.UUID `json:"report_id"`
	FinalScore     float64   `json:"final_score"` // 1.0..10.0
	RiskLevel      RiskLevel `json:"risk_level"`
	Recommendation string    `json:"recommendation"`
	CalculatedAt   time.Time `json:"calculated_at"`
}

// AssessmentPlace — оценка вместе с извлечённым местом репорта,
// используется при построении индекса опасных зон
type AssessmentPlace struct {
	Assessment     RiskAssessment
	ExtractedState string
	ExtractedCity  string
}
