// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	identity2 "agroflow/internal/gateway/http/identity"
	"agroflow/internal/handlers/rest/deliveries_get"
	"agroflow/internal/handlers/rest/delivery_get"
	"agroflow/internal/handlers/rest/delivery_route_get"
	"agroflow/internal/handlers/rest/delivery_status_put"
	"agroflow/internal/handlers/rest/events_stream_get"
	"agroflow/internal/handlers/tasks/inventory_reconcile"
	"agroflow/internal/pkg/config"
	"agroflow/internal/pkg/factory/route_eta"
	"agroflow/internal/pkg/middlewares/identity"
	delivery2 "agroflow/internal/repository/delivery"
	"agroflow/internal/repository/inventory"
	"agroflow/internal/service/delivery"
	"agroflow/internal/service/events"
	inventory2 "agroflow/internal/service/inventory"
	"agroflow/internal/service/route"
	"agroflow/internal/service/transition"
	"agroflow/pkg/background"
	"agroflow/pkg/logger"
	"agroflow/pkg/pubsub"
	"agroflow/pkg/querier"
	"agroflow/pkg/retrier"
	"agroflow/pkg/retrier/backoff_adapter"
	"agroflow/pkg/tx"
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"net/http"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, hub *pubsub.Hub, stream events.StreamPublisher, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideDeliveryRepository(querier)
	inventoryRepository := provideInventoryRepository(querier)
	manager := provideTxManager(pool)
	inventory := provideServiceInventory(inventoryRepository, manager)
	dispatcher := provideDispatcher(ctx, log, hub, stream)
	retrier := provideTransitionRetrier()
	transition := provideServiceTransition(repository, inventory, dispatcher, manager, retrier)
	delivery := provideServiceDelivery(repository, manager)
	etaFactory := provideETAFactory(cfg)
	route := provideServiceRoute(repository, etaFactory)
	identityGateway := provideIdentityGateway(cfg)
	reconcileInterval := provideReconcileInterval(cfg)
	reconcileBatch := provideReconcileBatch(cfg)
	inventoryReconcile := provideInventoryReconcileTask(log, inventory, reconcileInterval, reconcileBatch)
	v := provideTaskList(inventoryReconcile)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceTransition: transition,
		ServiceDelivery:   delivery,
		ServiceRoute:      route,
		Dispatcher:        dispatcher,
		IdentityResolver:  identityGateway,
		BackgroundWorkers: worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-created)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideDeliveryRepository(querier)
	manager := provideTxManager(pool)
	delivery := provideServiceDelivery(repository, manager)
	kafkaWorkerApp := &KafkaWorkerApp{
		DeliveryService: delivery,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	ReconcileInterval time.Duration
	ReconcileBatch    int
)

const (
	transitionRetryInitialInterval = 50 * time.Millisecond
	transitionRetryMaxInterval     = 500 * time.Millisecond
	transitionRetryMaxElapsedTime  = 2 * time.Second
	transitionRetryRandomization   = 0.5
	transitionRetryMultiplier      = 2.0
)

type Application struct {
	ServiceTransition ServiceTransition
	ServiceDelivery   ServiceDelivery
	ServiceRoute      ServiceRoute
	Dispatcher        *events.Dispatcher
	IdentityResolver  identity.Resolver
	BackgroundWorkers *background.Worker
}

type ServiceTransition interface {
	delivery_status_put.Service
}

type ServiceDelivery interface {
	deliveries_get.Service
	delivery_get.Service
}

type ServiceRoute interface {
	delivery_route_get.Service
}

var _ events_stream_get.Subscriber = (*events.Dispatcher)(nil)

type KafkaWorkerApp struct {
	DeliveryService *delivery.Delivery
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier2 *querier.Querier) *delivery2.Repository {
	return delivery2.New(querier2)
}

func provideInventoryRepository(querier2 *querier.Querier) *inventory.Repository {
	return inventory.New(querier2)
}

func provideServiceDelivery(
	repository delivery.Repository,
	txManager delivery.TxManager,
) *delivery.Delivery {
	return delivery.New(repository, txManager)
}

func provideServiceInventory(
	repository inventory2.Repository,
	txManager inventory2.TxManager,
) *inventory2.Inventory {
	return inventory2.New(repository, txManager)
}

func provideServiceTransition(
	repository transition.Repository, inventory3 transition.InventorySynchronizer,

	dispatcher transition.EventDispatcher,
	txManager transition.TxManager,
	r transition.Retrier,
) *transition.Transition {
	return transition.New(repository, inventory3, dispatcher, txManager, r)
}

func provideServiceRoute(
	repository route.Repository,
	etaFactory route.ETAFactory,
) *route.Route {
	return route.New(repository, etaFactory)
}

func provideETAFactory(cfg *config.Config) *route_eta.ETAFactory {
	return route_eta.New(cfg.Route.AvgSpeedKmh)
}

func provideDispatcher(
	ctx context.Context,
	log logger.Logger,
	hub *pubsub.Hub,
	stream events.StreamPublisher,
) *events.Dispatcher {
	return events.New(ctx, log, hub, stream)
}

// provideTransitionRetrier ретраит только инфраструктурные сбои: доменные
// отказы (конфликт версий, запрет перехода) повтором не лечатся.
func provideTransitionRetrier() *backoff_adapter.Retrier {
	return backoff_adapter.New(retrier.Config{
		InitialInterval: transitionRetryInitialInterval,
		MaxInterval:     transitionRetryMaxInterval,
		MaxElapsedTime:  transitionRetryMaxElapsedTime,
		Randomization:   transitionRetryRandomization,
		Multiplier:      transitionRetryMultiplier,
		ShouldRetry: func(err error) bool {
			return !transition.IsDomainError(err)
		},
	})
}

func provideIdentityGateway(cfg *config.Config) *identity2.IdentityGateway {
	client := &http.Client{
		Timeout: cfg.IdentityService.RequestTimeout,
	}
	return identity2.New(client, cfg.IdentityService.BaseURL)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.InventoryReconcileInterval)
}

func provideReconcileBatch(cfg *config.Config) ReconcileBatch {
	return ReconcileBatch(cfg.Tasks.InventoryReconcileBatch)
}

func provideInventoryReconcileTask(
	log logger.Logger,
	inventoryService inventory_reconcile.Service,
	interval ReconcileInterval,
	batch ReconcileBatch,
) *inventory_reconcile.InventoryReconcile {
	return inventory_reconcile.NewInventoryReconcile(log, inventoryService, time.Duration(interval), int(batch))
}

func provideTaskList(
	inventoryReconcileTask *inventory_reconcile.InventoryReconcile,
) []background.Task {
	return []background.Task{
		inventoryReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
