package route

import (
	"context"
	"fmt"
	"strings"

	"agroflow/internal/entities"
)

type Route struct {
	repository Repository
	etaFactory ETAFactory
}

func New(repository Repository, etaFactory ETAFactory) *Route {
	return &Route{
		repository: repository,
		etaFactory: etaFactory,
	}
}

// Resolve — чистая функция от текущего состояния доставки: одно чтение строки
// даёт консистентный снимок обеих координат, мутаций нет.
func (s *Route) Resolve(ctx context.Context, deliveryID string) (*entities.RouteDescriptor, error) {
	if strings.TrimSpace(deliveryID) == "" {
		return nil, ErrInvalidDeliveryID
	}

	delivery, err := s.repository.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("load delivery: %w", err)
	}

	if delivery.Pickup == nil || delivery.Dropoff == nil {
		return nil, ErrMissingCoordinates
	}

	distanceKm := haversineKm(*delivery.Pickup, *delivery.Dropoff)

	return &entities.RouteDescriptor{
		Pickup:     *delivery.Pickup,
		Dropoff:    *delivery.Dropoff,
		DistanceKm: distanceKm,
		ETAMinutes: s.etaFactory.EstimateMinutes(distanceKm, delivery.Urgency),
	}, nil
}
