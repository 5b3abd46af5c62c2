package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"agroflow/internal/entities"
	"agroflow/internal/repository"
	"agroflow/internal/service/transition"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, farmer_id, transporter_id, warehouse_id, status, goods_description,
		quantity, urgency, pickup_lat, pickup_lon, pickup_address,
		dropoff_lat, dropoff_lon, dropoff_address,
		created_at, assigned_at, in_transit_at, delivered_at, cancelled_at, version`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Delivery, error) {
	query := `SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transition.ErrNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

func (r *Repository) List(ctx context.Context, scope entities.DeliveryScope) ([]entities.Delivery, error) {
	builder := qb.
		Select(deliveryColumns).
		From("deliveries").
		OrderBy("created_at DESC")

	if !scope.All {
		or := sq.Or{}
		if scope.FarmerID != nil {
			or = append(or, sq.Eq{"farmer_id": *scope.FarmerID})
		}
		if scope.TransporterID != nil {
			or = append(or, sq.Eq{"transporter_id": *scope.TransporterID})
		}
		if scope.WarehouseID != nil {
			or = append(or, sq.Eq{"warehouse_id": *scope.WarehouseID})
		}
		if scope.IncludePending {
			or = append(or, sq.Eq{"status": entities.DeliveryPending.String()})
		}
		if len(or) == 0 {
			return []entities.Delivery{}, nil
		}
		builder = builder.Where(or)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	deliveries := make([]entities.Delivery, 0)
	for rows.Next() {
		deliveryDB, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		deliveries = append(deliveries, *ToDomain(deliveryDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return deliveries, nil
}

func (r *Repository) Create(ctx context.Context, d *entities.Delivery) (bool, error) {
	pickupLat, pickupLon, pickupAddress := fromCoordinates(d.Pickup)
	dropoffLat, dropoffLon, dropoffAddress := fromCoordinates(d.Dropoff)

	query := `
		INSERT INTO deliveries (
			id, farmer_id, warehouse_id, status, goods_description, quantity, urgency,
			pickup_lat, pickup_lon, pickup_address,
			dropoff_lat, dropoff_lon, dropoff_address,
			created_at, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 0)
		ON CONFLICT (id) DO NOTHING
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		d.ID,
		d.FarmerID,
		d.WarehouseID,
		d.Status.String(),
		d.GoodsDescription,
		d.Quantity,
		d.Urgency.String(),
		pickupLat,
		pickupLon,
		pickupAddress,
		dropoffLat,
		dropoffLon,
		dropoffAddress,
		d.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// CommitTransition — единственный способ мутации статуса: атомарный
// compare-and-set по version, никакого read-then-write с зазором.
func (r *Repository) CommitTransition(ctx context.Context, commit entities.DeliveryCommit) (*entities.Delivery, error) {
	builder := qb.
		Update("deliveries").
		Set("status", commit.Status.String()).
		Set("version", sq.Expr("version + 1"))

	if column := timestampColumn(commit.Status); column != "" {
		builder = builder.Set(column, commit.StampedAt)
	}
	if commit.TransporterID != nil {
		builder = builder.Set("transporter_id", *commit.TransporterID)
	}

	builder = builder.
		Where(sq.Eq{"id": commit.ID, "version": commit.ExpectedVersion}).
		Suffix("RETURNING " + deliveryColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository commit error: %w", err)
	}

	deliveryDB, err := scanDelivery(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.resolveCASMiss(ctx, commit.ID)
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrSerializationFailure) {
			return nil, transition.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository commit error: %w", err)
	}

	return ToDomain(deliveryDB), nil
}

// resolveCASMiss различает проигрыш гонки версий и неизвестный id.
func (r *Repository) resolveCASMiss(ctx context.Context, id string) error {
	var storedVersion int64
	err := r.querier.QueryRow(ctx, `SELECT version FROM deliveries WHERE id = $1`, id).
		Scan(&storedVersion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transition.ErrNotFound
		}
		return fmt.Errorf("unexpected delivery repository commit error: %w", err)
	}
	return transition.ErrConflict
}

func timestampColumn(status entities.DeliveryStatusType) string {
	switch status {
	case entities.DeliveryAssigned:
		return "assigned_at"
	case entities.DeliveryInTransit:
		return "in_transit_at"
	case entities.DeliveryDelivered:
		return "delivered_at"
	case entities.DeliveryCancelled:
		return "cancelled_at"
	default:
		return ""
	}
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var d DeliveryDB
	err := row.Scan(
		&d.ID,
		&d.FarmerID,
		&d.TransporterID,
		&d.WarehouseID,
		&d.Status,
		&d.GoodsDescription,
		&d.Quantity,
		&d.Urgency,
		&d.PickupLat,
		&d.PickupLon,
		&d.PickupAddress,
		&d.DropoffLat,
		&d.DropoffLon,
		&d.DropoffAddress,
		&d.CreatedAt,
		&d.AssignedAt,
		&d.InTransitAt,
		&d.DeliveredAt,
		&d.CancelledAt,
		&d.Version,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
