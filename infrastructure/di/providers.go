package di

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	commandbus "mindflow-backend/application/commands/bus"
	commandhandlers "mindflow-backend/application/commands/handlers"
	"mindflow-backend/application/ports"
	querybus "mindflow-backend/application/queries/bus"
	queryhandlers "mindflow-backend/application/queries/handlers"
	"mindflow-backend/application/sagas"
	"mindflow-backend/application/services"
	domaincfg "mindflow-backend/domain/config"
	"mindflow-backend/infrastructure/acl"
	"mindflow-backend/infrastructure/config"
	"mindflow-backend/infrastructure/messaging"
	"mindflow-backend/infrastructure/persistence/abstractions"
	"mindflow-backend/infrastructure/persistence/dynamodb"
	"mindflow-backend/infrastructure/persistence/memory"
	"mindflow-backend/infrastructure/persistence/sqlite"
	"mindflow-backend/pkg/auth"
	"mindflow-backend/pkg/observability"
)

// blobWriteRetries and blobWriteBackoff tune the persistence retry
// decorator for remote backends.
const (
	blobWriteRetries = 2
	blobWriteBackoff = 200 * time.Millisecond

	outboxFlushInterval = 30 * time.Second
)

// ProvideLogger creates a new logger instance.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig loads the business-rule configuration for the
// environment.
func ProvideDomainConfig(cfg *config.Config) *domaincfg.DomainConfig {
	dc := domaincfg.LoadDomainConfig(cfg.Environment)
	dc.EnableEventPublishing = cfg.EnableEvents
	if cfg.ClassifierEndpoint != "" {
		dc.EnableRemoteClassifier = true
	}
	return dc
}

// ProvideMetrics creates the Prometheus collector.
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("mindflow")
}

// ProvideAWSConfig creates AWS configuration.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client.
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client.
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideBlobStore creates the configured persistence backend wrapped with
// instrumentation and write retries.
func ProvideBlobStore(
	cfg *config.Config,
	client *awsdynamodb.Client,
	metrics *observability.Collector,
	logger *zap.Logger,
) (ports.BlobStore, error) {
	var backend ports.BlobStore
	switch cfg.StorageBackend {
	case "memory":
		backend = memory.NewBlobStore()
	case "dynamodb":
		backend = dynamodb.NewBlobStore(client, cfg.DynamoDBTable, logger)
	case "sqlite":
		store, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		backend = store
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	instrumented := abstractions.NewInstrumentedBlobStore(backend, metrics, logger)
	if cfg.StorageBackend == "memory" {
		return instrumented, nil
	}
	return abstractions.NewRetryingBlobStore(instrumented, blobWriteRetries, blobWriteBackoff), nil
}

// ProvideEventPublisher creates the event publisher: EventBridge behind an
// in-process outbox when events are enabled, a no-op otherwise.
func ProvideEventPublisher(
	cfg *config.Config,
	client *awseventbridge.Client,
	logger *zap.Logger,
) ports.EventPublisher {
	if !cfg.EnableEvents {
		return messaging.NewNoopPublisher()
	}
	bridge := messaging.NewEventBridgePublisher(client, cfg.EventBusName, cfg.EventSource, logger)
	return messaging.NewOutboxPublisher(bridge, outboxFlushInterval, logger)
}

// ProvideCache creates the in-memory cache.
func ProvideCache() ports.Cache {
	return NewInMemoryCache()
}

// ProvideClassifier selects the classification backend. A configured
// endpoint gets the circuit-broken remote classifier with the rule engine
// as fallback; otherwise the rule engine runs alone.
func ProvideClassifier(cfg *config.Config, dc *domaincfg.DomainConfig, logger *zap.Logger) ports.Classifier {
	local := services.NewLocalClassifier()
	if !dc.EnableRemoteClassifier || cfg.ClassifierEndpoint == "" {
		return local
	}
	timeout := time.Duration(cfg.ClassifierTimeout) * time.Millisecond
	return acl.NewRemoteClassifier(cfg.ClassifierEndpoint, timeout, local, logger)
}

// ProvideAnalyzerService creates the analyzer.
func ProvideAnalyzerService(
	classifier ports.Classifier,
	cache ports.Cache,
	dc *domaincfg.DomainConfig,
	logger *zap.Logger,
	metrics *observability.Collector,
) *services.AnalyzerService {
	return services.NewAnalyzerService(classifier, cache, dc, logger, metrics)
}

// ProvideStoreService creates the store and hydrates it from persistence.
// Hydration failures are non-fatal; the session starts empty.
func ProvideStoreService(
	ctx context.Context,
	blob ports.BlobStore,
	publisher ports.EventPublisher,
	dc *domaincfg.DomainConfig,
	logger *zap.Logger,
	metrics *observability.Collector,
) *services.StoreService {
	store := services.NewStoreService(blob, publisher, dc, logger, metrics)
	if err := store.Hydrate(ctx); err != nil {
		logger.Error("store hydration failed", zap.Error(err))
	}
	return store
}

// ProvideCommandBus creates the command bus with all store commands
// registered.
func ProvideCommandBus(store *services.StoreService, logger *zap.Logger) (*commandbus.CommandBus, error) {
	b := commandbus.NewCommandBus()
	b.Use(commandbus.LoggingMiddleware(logger))
	if err := commandhandlers.NewStoreCommandHandler(store).RegisterAll(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ProvideQueryBus creates the query bus with all store queries registered.
func ProvideQueryBus(store *services.StoreService) (*querybus.QueryBus, error) {
	b := querybus.NewQueryBus()
	if err := queryhandlers.NewStoreQueryHandler(store).RegisterAll(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ProvideSaveNoteSaga creates the save-note flow.
func ProvideSaveNoteSaga(
	analyzer *services.AnalyzerService,
	store *services.StoreService,
	logger *zap.Logger,
) *sagas.SaveNoteSaga {
	return sagas.NewSaveNoteSaga(analyzer, store, logger)
}

// ProvideJWTValidator creates the token validator. Without a configured
// secret the validator is nil and the API runs unauthenticated, which the
// middleware treats as development mode.
func ProvideJWTValidator(cfg *config.Config, logger *zap.Logger) (*auth.JWTValidator, error) {
	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		logger.Warn("JWT_SECRET not set, authentication disabled")
		return nil, nil
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	})
}

// Shutdown releases container resources: the outbox is flushed and the
// persistence backend closed.
func (c *Container) Shutdown() {
	if outbox, ok := c.Publisher.(*messaging.OutboxPublisher); ok {
		outbox.Close()
	}
	if closer, ok := c.BlobStore.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			c.Logger.Warn("closing blob store", zap.Error(err))
		}
	}
	_ = c.Logger.Sync()
}
