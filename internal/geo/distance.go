package geo

import (
	"math"
	"strconv"
)

// EarthRadiusMeters - средний радиус Земли для сферической аппроксимации
const EarthRadiusMeters = 6371000.0

// DefaultMapLinkBase - база ссылки на карту для отчетов автоматизаций
const DefaultMapLinkBase = "https://www.google.com/maps"

// DistanceMeters возвращает расстояние по большой окружности (haversine) в метрах
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := toRadians(lat2 - lat1)
	dLambda := toRadians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// Для антиподов ошибка округления может вывести a за пределы [0,1]
	a = math.Min(1, math.Max(0, a))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// MapLink строит ссылку на карту вида <base>?q=lat,lng
func MapLink(base string, lat, lng float64) string {
	if base == "" {
		base = DefaultMapLinkBase
	}
	return base + "?q=" + strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
