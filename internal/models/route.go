package models

// Coordinate — пара широта/долгота в градусах WGS84
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TravelMode — способ передвижения, поддерживаемый провайдером маршрутов
type TravelMode string

const (
	TravelModeDrive      TravelMode = "DRIVE"
	TravelModeWalk       TravelMode = "WALK"
	TravelModeTwoWheeler TravelMode = "TWO_WHEELER"
)

// Valid проверяет, что режим известен
func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeDrive, TravelModeWalk, TravelModeTwoWheeler:
		return true
	}
	return false
}

// RouteCandidate — маршрут-кандидат от внешнего провайдера; неизменяемый
// вход оценщика, живёт только в рамках одного запроса
type RouteCandidate struct {
	EncodedPolyline string       `json:"polyline"`
	Points          []Coordinate `json:"-"`
	DistanceM       int          `json:"distance_m"`
	DurationS       int          `json:"duration_s"`
}

// RankedRoute — кандидат с посчитанной экспозицией к опасным зонам
type RankedRoute struct {
	Route         RouteCandidate `json:"route"`
	HazardCount   int            `json:"hazard_count"`
	HazardWeight  int            `json:"hazard_weight"`
	ProviderOrder int            `json:"-"`
}

// SafeRouteResult — итог подбора безопасного маршрута
type SafeRouteResult struct {
	Best         RankedRoute   `json:"best"`
	Alternatives []RankedRoute `json:"alternatives"`
	Hazards      []HazardZone  `json:"hazards"`
}
