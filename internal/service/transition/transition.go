package transition

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agroflow/internal/entities"
)

// TransitionRequest — запрос актора на перевод доставки в новый статус.
// ExpectedVersion nil означает неявное чтение текущей версии перед записью;
// сам compare-and-set в хранилище остаётся единственной настоящей защитой.
type TransitionRequest struct {
	DeliveryID      string
	Requested       entities.DeliveryStatusType
	Actor           entities.Actor
	ExpectedVersion *int64
	TransporterID   *string
}

type Transition struct {
	repository Repository
	inventory  InventorySynchronizer
	dispatcher EventDispatcher
	txManager  TxManager
	retrier    Retrier
}

func New(
	repository Repository,
	inventory InventorySynchronizer,
	dispatcher EventDispatcher,
	txManager TxManager,
	retrier Retrier,
) *Transition {
	return &Transition{
		repository: repository,
		inventory:  inventory,
		dispatcher: dispatcher,
		txManager:  txManager,
		retrier:    retrier,
	}
}

func (s *Transition) Transition(ctx context.Context, req TransitionRequest) (*entities.Delivery, error) {
	if !isValidDeliveryID(req.DeliveryID) {
		return nil, fmt.Errorf("empty delivery id: %w", ErrValidation)
	}
	if !isValidStatus(req.Requested) {
		return nil, fmt.Errorf("unknown status %q: %w", req.Requested, ErrValidation)
	}
	if !isValidRole(req.Actor.Role) {
		return nil, fmt.Errorf("unknown role %q: %w", req.Actor.Role, ErrValidation)
	}

	var (
		committed *entities.Delivery
		adjusted  *entities.InventoryRecord
	)

	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		committed = nil
		adjusted = nil
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.applyTransition(ctx, req, &committed, &adjusted)
		})
	})
	if err != nil {
		if IsDomainError(err) {
			return nil, err
		}
		return nil, errors.Join(ErrUnavailable, err)
	}

	// Broadcast после фиксации; не блокирует и не откатывает коммит.
	s.dispatcher.DeliveryCommitted(committed, adjusted)

	return committed, nil
}

func (s *Transition) applyTransition(
	ctx context.Context,
	req TransitionRequest,
	committed **entities.Delivery,
	adjusted **entities.InventoryRecord,
) error {
	current, err := s.repository.GetByID(ctx, req.DeliveryID)
	if err != nil {
		return fmt.Errorf("load delivery: %w", err)
	}

	expectedVersion := current.Version
	if req.ExpectedVersion != nil {
		if *req.ExpectedVersion != current.Version {
			return fmt.Errorf("expected version %d, stored %d: %w",
				*req.ExpectedVersion, current.Version, ErrConflict)
		}
		expectedVersion = *req.ExpectedVersion
	}

	if !edgeAllowed(current.Status, req.Requested) {
		return fmt.Errorf("%s -> %s: %w", current.Status, req.Requested, ErrInvalidTransition)
	}

	if !transitionPermitted(current, req.Requested, req.Actor) {
		return fmt.Errorf("role %s on %s -> %s: %w",
			req.Actor.Role, current.Status, req.Requested, ErrForbidden)
	}

	commit := entities.DeliveryCommit{
		ID:              current.ID,
		ExpectedVersion: expectedVersion,
		Status:          req.Requested,
		StampedAt:       time.Now().UTC(),
	}

	switch req.Requested {
	case entities.DeliveryAssigned:
		if req.TransporterID == nil || strings.TrimSpace(*req.TransporterID) == "" {
			return fmt.Errorf("transporter id required for assignment: %w", ErrValidation)
		}
		commit.TransporterID = req.TransporterID
	case entities.DeliveryInTransit:
		if current.TransporterID == nil {
			return fmt.Errorf("transporter not assigned: %w", ErrValidation)
		}
	}

	updated, err := s.repository.CommitTransition(ctx, commit)
	if err != nil {
		return fmt.Errorf("commit transition: %w", err)
	}

	// Инвентарь обновляется в той же транзакции, что и сам переход:
	// delivered без корректировки склада не должен быть наблюдаем.
	if updated.Status == entities.DeliveryDelivered {
		record, err := s.inventory.ApplyDeliveryAdjustment(ctx, updated)
		if err != nil {
			return fmt.Errorf("apply inventory adjustment: %w", err)
		}
		*adjusted = record
	}

	*committed = updated
	return nil
}

// IsDomainError отличает доменные отказы от инфраструктурных: доменные не
// ретраятся и не превращаются в ErrUnavailable.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict)
}
