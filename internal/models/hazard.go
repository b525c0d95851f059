package models

// HazardZone — геолоцированный круг опасности, построенный из актуальной
// оценки риска. Не хранится в бд: пересчитывается на каждое чтение индекса
type HazardZone struct {
	ID        int64     `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	RiskLevel RiskLevel `json:"risk_level"`
	RadiusM   int       `json:"radius_m"`
}
