package route_eta

import (
	"agroflow/internal/entities"
)

type ETAFactory struct {
	avgSpeedKmh float64
}

func New(avgSpeedKmh float64) *ETAFactory {
	return &ETAFactory{avgSpeedKmh: avgSpeedKmh}
}

// EstimateMinutes — наивный ETA: расстояние на среднюю скорость, срочность
// корректирует скорость (срочные доставки едут быстрее, несрочные медленнее).
func (f *ETAFactory) EstimateMinutes(distanceKm float64, urgency entities.UrgencyType) float64 {
	speed := f.avgSpeedKmh
	switch urgency {
	case entities.UrgencyHigh:
		speed *= 1.25
	case entities.UrgencyLow:
		speed *= 0.8
	case entities.UrgencyNormal:
	default:
	}

	if speed <= 0 {
		return 0
	}

	return distanceKm / speed * 60
}
