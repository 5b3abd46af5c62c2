package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"agroflow/internal/entities"
	"agroflow/internal/service/transition"
)

type Delivery struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Delivery {
	return &Delivery{
		repository: repository,
		txManager:  txManager,
	}
}

// ListForActor возвращает доставки в области видимости актора: фермер — свои,
// транспортёр — назначенные ему плюс неразобранные pending, менеджер склада —
// свой склад плюс pending, admin — всё.
func (s *Delivery) ListForActor(ctx context.Context, actor entities.Actor) ([]entities.Delivery, error) {
	scope, err := scopeForActor(actor)
	if err != nil {
		return nil, err
	}

	deliveries, err := s.repository.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// GetForActor читает доставку с той же областью видимости, что и ListForActor.
// Вне области — ErrDeliveryNotFound, существование записи не раскрывается.
func (s *Delivery) GetForActor(ctx context.Context, id string, actor entities.Actor) (*entities.Delivery, error) {
	if !isValidID(id) {
		return nil, ErrMissingRequiredFields
	}

	d, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, transition.ErrNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	if !visibleTo(d, actor) {
		return nil, ErrDeliveryNotFound
	}
	return d, nil
}

// AcceptPending принимает pending-запись от внешнего сервиса создания.
// Идемпотентно по id: повторное событие для уже принятой доставки возвращает
// сохранённую запись без изменений.
func (s *Delivery) AcceptPending(ctx context.Context, nd entities.NewDelivery) (*entities.Delivery, error) {
	if !isValidID(nd.FarmerID) || nd.GoodsDescription == "" {
		return nil, ErrMissingRequiredFields
	}
	if nd.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !isValidCoordinates(nd.Pickup) || !isValidCoordinates(nd.Dropoff) {
		return nil, ErrInvalidCoordinates
	}

	urgency := entities.DefaultUrgencyType
	if nd.Urgency != nil {
		if !isValidUrgency(*nd.Urgency) {
			return nil, ErrInvalidUrgency
		}
		urgency = *nd.Urgency
	}

	id := uuid.NewString()
	if nd.ID != nil && isValidID(*nd.ID) {
		id = *nd.ID
	}

	createdAt := time.Now().UTC()
	if nd.CreatedAt != nil {
		createdAt = nd.CreatedAt.UTC()
	}

	record := &entities.Delivery{
		ID:               id,
		FarmerID:         nd.FarmerID,
		WarehouseID:      nd.WarehouseID,
		Status:           entities.DeliveryPending,
		GoodsDescription: nd.GoodsDescription,
		Quantity:         nd.Quantity,
		Urgency:          urgency,
		Pickup:           nd.Pickup,
		Dropoff:          nd.Dropoff,
		CreatedAt:        createdAt,
		Version:          0,
	}

	var accepted *entities.Delivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		inserted, err := s.repository.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}

		if !inserted {
			existing, err := s.repository.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("load existing delivery: %w", err)
			}
			accepted = existing
			return nil
		}

		accepted = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return accepted, nil
}

func scopeForActor(actor entities.Actor) (entities.DeliveryScope, error) {
	switch actor.Role {
	case entities.RoleFarmer:
		return entities.DeliveryScope{FarmerID: pointer.To(actor.ID)}, nil
	case entities.RoleTransporter:
		return entities.DeliveryScope{
			TransporterID:  pointer.To(actor.ID),
			IncludePending: true,
		}, nil
	case entities.RoleWarehouseManager:
		return entities.DeliveryScope{
			WarehouseID:    pointer.To(actor.ID),
			IncludePending: true,
		}, nil
	case entities.RoleAdmin:
		return entities.DeliveryScope{All: true}, nil
	default:
		return entities.DeliveryScope{}, ErrInvalidRole
	}
}

func visibleTo(d *entities.Delivery, actor entities.Actor) bool {
	switch actor.Role {
	case entities.RoleFarmer:
		return d.FarmerID == actor.ID
	case entities.RoleTransporter:
		if d.Status == entities.DeliveryPending {
			return true
		}
		return d.TransporterID != nil && *d.TransporterID == actor.ID
	case entities.RoleWarehouseManager:
		if d.Status == entities.DeliveryPending {
			return true
		}
		return d.WarehouseID != nil && *d.WarehouseID == actor.ID
	case entities.RoleAdmin:
		return true
	default:
		return false
	}
}
