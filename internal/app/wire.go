//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	identityGateway "agroflow/internal/gateway/http/identity"
	deliveries_get "agroflow/internal/handlers/rest/deliveries_get"
	delivery_get "agroflow/internal/handlers/rest/delivery_get"
	delivery_route_get "agroflow/internal/handlers/rest/delivery_route_get"
	delivery_status_put "agroflow/internal/handlers/rest/delivery_status_put"
	events_stream_get "agroflow/internal/handlers/rest/events_stream_get"
	"agroflow/internal/handlers/tasks/inventory_reconcile"
	"agroflow/internal/pkg/config"
	"agroflow/internal/pkg/factory/route_eta"
	identityMiddleware "agroflow/internal/pkg/middlewares/identity"

	deliveryRepo "agroflow/internal/repository/delivery"
	inventoryRepo "agroflow/internal/repository/inventory"
	deliveryService "agroflow/internal/service/delivery"
	eventsService "agroflow/internal/service/events"
	inventoryService "agroflow/internal/service/inventory"
	routeService "agroflow/internal/service/route"
	transitionService "agroflow/internal/service/transition"

	"agroflow/pkg/background"
	"agroflow/pkg/logger"
	"agroflow/pkg/pubsub"
	"agroflow/pkg/querier"
	"agroflow/pkg/retrier"
	"agroflow/pkg/retrier/backoff_adapter"
	"agroflow/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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
	Dispatcher        *eventsService.Dispatcher
	IdentityResolver  identityMiddleware.Resolver
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

var _ events_stream_get.Subscriber = (*eventsService.Dispatcher)(nil)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	hub *pubsub.Hub,
	stream eventsService.StreamPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,
		provideReconcileBatch,

		provideDeliveryRepository,
		provideInventoryRepository,

		provideServiceDelivery,
		provideServiceInventory,
		provideServiceTransition,
		provideServiceRoute,
		provideETAFactory,
		provideDispatcher,
		provideTransitionRetrier,
		provideIdentityGateway,

		provideInventoryReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceTransition), new(*transitionService.Transition)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceRoute), new(*routeService.Route)),
		wire.Bind(new(identityMiddleware.Resolver), new(*identityGateway.IdentityGateway)),

		wire.Bind(new(transitionService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(transitionService.InventorySynchronizer), new(*inventoryService.Inventory)),
		wire.Bind(new(transitionService.EventDispatcher), new(*eventsService.Dispatcher)),
		wire.Bind(new(transitionService.Retrier), new(*backoff_adapter.Retrier)),
		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(routeService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(routeService.ETAFactory), new(*route_eta.ETAFactory)),
		wire.Bind(new(inventoryService.Repository), new(*inventoryRepo.Repository)),

		wire.Bind(new(transitionService.TxManager), new(*tx.Manager)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(inventoryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(inventory_reconcile.Service), new(*inventoryService.Inventory)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DeliveryService *deliveryService.Delivery
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-created)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		provideServiceDelivery,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideInventoryRepository(querier *querier.Querier) *inventoryRepo.Repository {
	return inventoryRepo.New(querier)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, txManager)
}

func provideServiceInventory(
	repository inventoryService.Repository,
	txManager inventoryService.TxManager,
) *inventoryService.Inventory {
	return inventoryService.New(repository, txManager)
}

func provideServiceTransition(
	repository transitionService.Repository,
	inventory transitionService.InventorySynchronizer,
	dispatcher transitionService.EventDispatcher,
	txManager transitionService.TxManager,
	r transitionService.Retrier,
) *transitionService.Transition {
	return transitionService.New(repository, inventory, dispatcher, txManager, r)
}

func provideServiceRoute(
	repository routeService.Repository,
	etaFactory routeService.ETAFactory,
) *routeService.Route {
	return routeService.New(repository, etaFactory)
}

func provideETAFactory(cfg *config.Config) *route_eta.ETAFactory {
	return route_eta.New(cfg.Route.AvgSpeedKmh)
}

func provideDispatcher(
	ctx context.Context,
	log logger.Logger,
	hub *pubsub.Hub,
	stream eventsService.StreamPublisher,
) *eventsService.Dispatcher {
	return eventsService.New(ctx, log, hub, stream)
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
			return !transitionService.IsDomainError(err)
		},
	})
}

func provideIdentityGateway(cfg *config.Config) *identityGateway.IdentityGateway {
	client := &http.Client{
		Timeout: cfg.IdentityService.RequestTimeout,
	}
	return identityGateway.New(client, cfg.IdentityService.BaseURL)
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
