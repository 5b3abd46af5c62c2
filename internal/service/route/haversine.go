package route

import (
	"math"

	"agroflow/internal/entities"
)

const earthRadiusKm = 6371.0

// haversineKm — расстояние по большому кругу между двумя точками.
func haversineKm(from, to entities.Coordinates) float64 {
	lat1 := degreesToRadians(from.Latitude)
	lat2 := degreesToRadians(to.Latitude)
	deltaLat := degreesToRadians(to.Latitude - from.Latitude)
	deltaLon := degreesToRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
