package container

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/datakeep/communities-service/internal/api/config"
	"github.com/datakeep/communities-service/internal/api/serializers/dcat"
	"github.com/datakeep/communities-service/internal/api/service"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/shared/clients/postgres"
	"github.com/datakeep/communities-service/internal/shared/clients/ssm"
	"github.com/datakeep/communities-service/internal/shared/logging"
)

// DependencyContainer builds the service's collaborators lazily, once per
// Lambda invocation. Clients that need the JWT secret take a context because
// the secret comes from SSM.
type DependencyContainer interface {
	PostgresDB() postgres.DB
	RecordsStore() records.Store
	Communities(ctx context.Context) (service.Communities, error)
	Requests(ctx context.Context) (service.Requests, error)
	SearchIndex(ctx context.Context) (service.SearchIndex, error)
	RecordCommunities(ctx context.Context) (*service.RecordCommunities, error)
	DCATSchema() *dcat.Schema
	Logger() *slog.Logger
	SetLogger(logger *slog.Logger)
	AddLoggingContext(args ...any)
}

type Container struct {
	AwsConfig         aws.Config
	Config            config.Config
	postgresdb        postgres.DB
	parameterStore    ssm.ParameterStore
	recordsStore      *records.PostgresStore
	communities       *service.HTTPCommunities
	requests          *service.HTTPRequests
	searchIndex       *service.HTTPSearchIndex
	recordCommunities *service.RecordCommunities
	dcatSchema        *dcat.Schema
	logger            *slog.Logger
}

func NewContainer() (*Container, error) {
	containerConfig, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return nil, err
	}

	return NewContainerFromConfig(containerConfig, awsCfg), nil
}

func NewContainerFromConfig(config config.Config, awsConfig aws.Config) *Container {
	return &Container{
		Config:    config,
		AwsConfig: awsConfig,
	}
}

func (c *Container) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

func (c *Container) AddLoggingContext(args ...any) {
	c.logger = c.Logger().With(args...)
}

func (c *Container) Logger() *slog.Logger {
	if c.logger == nil {
		c.logger = logging.Default.With(slog.String("warning", "should set logger with context"))
	}
	return c.logger
}

func (c *Container) PostgresDB() postgres.DB {
	if c.postgresdb == nil {
		pgCfg := c.Config.PostgresDB
		c.postgresdb = postgres.NewRDSProxy(
			c.AwsConfig,
			pgCfg.Host,
			pgCfg.Port,
			pgCfg.User,
		)
	}
	return c.postgresdb
}

func (c *Container) ParameterStore() ssm.ParameterStore {
	if c.parameterStore == nil {
		c.parameterStore = ssm.NewAWSParameterStore(awsssm.NewFromConfig(c.AwsConfig))
	}
	return c.parameterStore
}

func (c *Container) RecordsStore() records.Store {
	if c.recordsStore == nil {
		c.recordsStore = records.NewPostgresStore(c.PostgresDB(),
			c.Config.PostgresDB.RecordsDatabase,
			c.Logger())
	}
	return c.recordsStore
}

func (c *Container) Communities(ctx context.Context) (service.Communities, error) {
	if c.communities == nil {
		jwtSecretKey, err := c.jwtSecretKey(ctx)
		if err != nil {
			return nil, err
		}
		c.communities = service.NewHTTPCommunities(
			c.Config.Datakeep.CommunitiesServiceURL,
			jwtSecretKey,
			c.Logger())
	}
	return c.communities, nil
}

func (c *Container) Requests(ctx context.Context) (service.Requests, error) {
	if c.requests == nil {
		jwtSecretKey, err := c.jwtSecretKey(ctx)
		if err != nil {
			return nil, err
		}
		c.requests = service.NewHTTPRequests(
			c.Config.Datakeep.RequestsServiceURL,
			jwtSecretKey,
			c.Logger())
	}
	return c.requests, nil
}

func (c *Container) SearchIndex(ctx context.Context) (service.SearchIndex, error) {
	if c.searchIndex == nil {
		jwtSecretKey, err := c.jwtSecretKey(ctx)
		if err != nil {
			return nil, err
		}
		c.searchIndex = service.NewHTTPSearchIndex(
			c.Config.Datakeep.SearchIndexURL,
			jwtSecretKey,
			c.Logger())
	}
	return c.searchIndex, nil
}

func (c *Container) RecordCommunities(ctx context.Context) (*service.RecordCommunities, error) {
	if c.recordCommunities == nil {
		communities, err := c.Communities(ctx)
		if err != nil {
			return nil, err
		}
		requests, err := c.Requests(ctx)
		if err != nil {
			return nil, err
		}
		searchIndex, err := c.SearchIndex(ctx)
		if err != nil {
			return nil, err
		}
		c.recordCommunities = service.NewRecordCommunities(
			c.RecordsStore(),
			communities,
			requests,
			searchIndex,
			c.Logger())
	}
	return c.recordCommunities, nil
}

func (c *Container) DCATSchema() *dcat.Schema {
	if c.dcatSchema == nil {
		c.dcatSchema = dcat.NewSchema(c.Config.Datakeep.SiteURL)
	}
	return c.dcatSchema
}

func (c *Container) jwtSecretKey(ctx context.Context) (string, error) {
	return c.Config.Datakeep.JWTSecretKey.Load(ctx, c.ParameterStore().GetParameter)
}
