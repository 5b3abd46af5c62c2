package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager оборачивает trm-менеджер: fn выполняется внутри транзакции,
// репозитории достают её из контекста через pkg/querier.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

// Do выполняет fn в Serializable-транзакции. Переход статуса и запись
// в инвентарный журнал должны фиксироваться одним атомарным блоком.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.withIsoLevel(ctx, pgx.Serializable, fn)
}

func (m *Manager) withIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
