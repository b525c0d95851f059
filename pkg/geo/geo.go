package geo

import (
	"math"
	"strconv"
	"strings"
)

// Средний радиус Земли в метрах
const earthRadiusM = 6371000.0

// HaversineMeters возвращает расстояние по дуге большого круга между двумя точками
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}

// bearingRad возвращает начальный азимут из точки 1 в точку 2 в радианах
func bearingRad(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dLambda := (lng2 - lng1) * math.Pi / 180

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	return math.Atan2(y, x)
}

// PointToSegmentMeters возвращает минимальное расстояние по большому кругу от
// точки P до отрезка AB. Если проекция точки лежит вне отрезка, берётся
// расстояние до ближайшего конца
func PointToSegmentMeters(pLat, pLng, aLat, aLng, bLat, bLng float64) float64 {
	dAP := HaversineMeters(aLat, aLng, pLat, pLng)

	dAB := HaversineMeters(aLat, aLng, bLat, bLng)
	if dAB == 0 {
		// Вырожденный отрезок
		return dAP
	}

	thetaAP := bearingRad(aLat, aLng, pLat, pLng)
	thetaAB := bearingRad(aLat, aLng, bLat, bLng)

	// Проекция позади точки A
	if math.Cos(thetaAP-thetaAB) < 0 {
		return dAP
	}

	// Поперечное отклонение от линии AB (cross-track distance)
	sinXT := math.Sin(dAP/earthRadiusM) * math.Sin(thetaAP-thetaAB)
	sinXT = math.Max(-1, math.Min(1, sinXT))
	dXT := math.Asin(sinXT) * earthRadiusM

	// Продольная составляющая вдоль AB (along-track distance)
	cosAT := math.Cos(dAP/earthRadiusM) / math.Cos(dXT/earthRadiusM)
	cosAT = math.Max(-1, math.Min(1, cosAT))
	dAT := math.Acos(cosAT) * earthRadiusM

	// Проекция за точкой B
	if dAT > dAB {
		return HaversineMeters(bLat, bLng, pLat, pLng)
	}

	return math.Abs(dXT)
}

// ParseLatLng разбирает строку вида "lat,lng" с проверкой диапазонов.
// Возвращает false, если строка не является парой координат
func ParseLatLng(text string) (float64, float64, bool) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}
