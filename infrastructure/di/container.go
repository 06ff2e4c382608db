package di

import (
	commandbus "mindflow-backend/application/commands/bus"
	"mindflow-backend/application/ports"
	querybus "mindflow-backend/application/queries/bus"
	"mindflow-backend/application/sagas"
	"mindflow-backend/application/services"
	domaincfg "mindflow-backend/domain/config"
	"mindflow-backend/infrastructure/config"
	"mindflow-backend/pkg/auth"
	"mindflow-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	DomainConfig *domaincfg.DomainConfig
	Logger       *zap.Logger
	Metrics      *observability.Collector
	BlobStore    ports.BlobStore
	Cache        ports.Cache
	Publisher    ports.EventPublisher
	Classifier   ports.Classifier
	Analyzer     *services.AnalyzerService
	Store        *services.StoreService
	CommandBus   *commandbus.CommandBus
	QueryBus     *querybus.QueryBus
	SaveNoteSaga *sagas.SaveNoteSaga
	JWTValidator *auth.JWTValidator
}
