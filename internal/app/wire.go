//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	identityGateway "tracker/internal/gateway/grpc/identity"
	notificationGateway "tracker/internal/gateway/kafka/notification"
	proto "tracker/internal/generated/proto/clients"
	delivery_confirm_post "tracker/internal/handlers/rest/delivery_confirm_post"
	package_get "tracker/internal/handlers/rest/package_get"
	package_post "tracker/internal/handlers/rest/package_post"
	package_status_put "tracker/internal/handlers/rest/package_status_put"
	packages_get "tracker/internal/handlers/rest/packages_get"
	stats_customer_get "tracker/internal/handlers/rest/stats_customer_get"
	stats_dashboard_get "tracker/internal/handlers/rest/stats_dashboard_get"
	tracking_get "tracker/internal/handlers/rest/tracking_get"
	"tracker/internal/handlers/tasks/stats_exporter"
	"tracker/internal/pkg/config"

	parcelRepo "tracker/internal/repository/parcel"
	trackingRepo "tracker/internal/repository/tracking"
	confirmationService "tracker/internal/service/confirmation"
	packagesService "tracker/internal/service/packages"
	statsService "tracker/internal/service/stats"
	trackingService "tracker/internal/service/tracking"

	"tracker/pkg/background"
	"tracker/pkg/logger"
	"tracker/pkg/querier"
	"tracker/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type (
	StatsExportInterval time.Duration
)

type Application struct {
	ServicePackages     ServicePackages
	ServiceConfirmation ServiceConfirmation
	ServiceTracking     ServiceTracking
	ServiceStats        ServiceStats
	BackgroundWorkers   *background.Worker
}

type ServicePackages interface {
	package_post.Service
	package_get.Service
	packages_get.Service
	package_status_put.Service
}

type ServiceConfirmation interface {
	delivery_confirm_post.Service
}

type ServiceTracking interface {
	tracking_get.Service
}

type ServiceStats interface {
	stats_customer_get.Service
	stats_dashboard_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStatsExportInterval,

		provideParcelRepository,
		provideTrackingRepository,

		provideIdentityServiceClient,
		provideIdentityGateway,
		provideNotificationGateway,

		provideServiceConfirmation,
		provideServicePackages,
		provideServiceTracking,
		provideServiceStats,

		provideStatsExporterTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServicePackages), new(*packagesService.Packages)),
		wire.Bind(new(ServiceConfirmation), new(*confirmationService.Confirmation)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceStats), new(*statsService.Stats)),

		wire.Bind(new(packagesService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(packagesService.Ledger), new(*trackingRepo.Repository)),
		wire.Bind(new(packagesService.ConfirmationService), new(*confirmationService.Confirmation)),
		wire.Bind(new(packagesService.TxManager), new(*tx.Manager)),

		wire.Bind(new(confirmationService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(confirmationService.IdentityGateway), new(*identityGateway.IdentityGateway)),
		wire.Bind(new(confirmationService.Notifier), new(*notificationGateway.NotificationGateway)),

		wire.Bind(new(trackingService.EventRepository), new(*trackingRepo.Repository)),
		wire.Bind(new(trackingService.PackageRepository), new(*parcelRepo.Repository)),

		wire.Bind(new(statsService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(statsService.IdentityGateway), new(*identityGateway.IdentityGateway)),

		wire.Bind(new(stats_exporter.Service), new(*statsService.Stats)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ServicePackages *packagesService.Packages
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-confirmed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		provideTrackingRepository,

		provideIdentityServiceClient,
		provideIdentityGateway,
		provideNotificationGateway,

		provideServiceConfirmation,
		provideServicePackages,

		wire.Bind(new(packagesService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(packagesService.Ledger), new(*trackingRepo.Repository)),
		wire.Bind(new(packagesService.ConfirmationService), new(*confirmationService.Confirmation)),
		wire.Bind(new(packagesService.TxManager), new(*tx.Manager)),

		wire.Bind(new(confirmationService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(confirmationService.IdentityGateway), new(*identityGateway.IdentityGateway)),
		wire.Bind(new(confirmationService.Notifier), new(*notificationGateway.NotificationGateway)),

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

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideIdentityServiceClient(conn *grpc.ClientConn) proto.IdentityServiceClient {
	return proto.NewIdentityServiceClient(conn)
}

func provideIdentityGateway(client proto.IdentityServiceClient) *identityGateway.IdentityGateway {
	return identityGateway.New(client)
}

func provideNotificationGateway(producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.NotificationGateway {
	return notificationGateway.New(producer, cfg.Kafka.NotificationTopic)
}

func provideServiceConfirmation(
	log logger.Logger,
	repository confirmationService.Repository,
	identity confirmationService.IdentityGateway,
	notifier confirmationService.Notifier,
) *confirmationService.Confirmation {
	return confirmationService.New(log, repository, identity, notifier)
}

func provideServicePackages(
	log logger.Logger,
	repository packagesService.Repository,
	ledger packagesService.Ledger,
	confirmation packagesService.ConfirmationService,
	txManager packagesService.TxManager,
) *packagesService.Packages {
	return packagesService.New(log, repository, ledger, confirmation, txManager)
}

func provideServiceTracking(
	events trackingService.EventRepository,
	packages trackingService.PackageRepository,
) *trackingService.Tracking {
	return trackingService.New(events, packages)
}

func provideServiceStats(
	log logger.Logger,
	repository statsService.Repository,
	identity statsService.IdentityGateway,
) *statsService.Stats {
	return statsService.New(log, repository, identity)
}

func provideStatsExportInterval(cfg *config.Config) StatsExportInterval {
	return StatsExportInterval(cfg.Tasks.StatsExportInterval)
}

func provideStatsExporterTask(
	log logger.Logger,
	statsService stats_exporter.Service,
	interval StatsExportInterval,
) *stats_exporter.StatsExporter {
	return stats_exporter.NewStatsExporter(log, statsService, time.Duration(interval))
}

func provideTaskList(
	statsExporterTask *stats_exporter.StatsExporter,
) []background.Task {
	return []background.Task{
		statsExporterTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
