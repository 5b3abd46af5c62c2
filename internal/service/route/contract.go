//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"agroflow/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Delivery, error)
}

type ETAFactory interface {
	EstimateMinutes(distanceKm float64, urgency entities.UrgencyType) float64
}
