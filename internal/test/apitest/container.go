package apitest

import (
	"context"
	"log/slog"

	"github.com/datakeep/communities-service/internal/api/serializers/dcat"
	"github.com/datakeep/communities-service/internal/api/service"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/shared/clients/postgres"
	"github.com/datakeep/communities-service/internal/shared/logging"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/stretchr/testify/require"
)

// TestContainer is a container.DependencyContainer with directly settable
// dependencies. Tests only set what the route under test needs; asking for an
// unset dependency fails the test instead of silently building a real one.
type TestContainer struct {
	t                 require.TestingT
	TestPostgresDB    postgres.DB
	TestRecordsStore  records.Store
	TestCommunities   service.Communities
	TestRequests      service.Requests
	TestSearchIndex   service.SearchIndex
	TestDCATSchema    *dcat.Schema
	recordCommunities *service.RecordCommunities
	logger            *slog.Logger
}

func NewTestContainer(t require.TestingT) *TestContainer {
	test.Helper(t)
	return &TestContainer{t: t}
}

func (c *TestContainer) WithPostgresDB(db postgres.DB) *TestContainer {
	c.TestPostgresDB = db
	return c
}

func (c *TestContainer) WithRecordsStore(store records.Store) *TestContainer {
	c.TestRecordsStore = store
	return c
}

func (c *TestContainer) WithCommunities(communities service.Communities) *TestContainer {
	c.TestCommunities = communities
	return c
}

func (c *TestContainer) WithRequests(requests service.Requests) *TestContainer {
	c.TestRequests = requests
	return c
}

func (c *TestContainer) WithSearchIndex(searchIndex service.SearchIndex) *TestContainer {
	c.TestSearchIndex = searchIndex
	return c
}

func (c *TestContainer) WithDCATSchema(schema *dcat.Schema) *TestContainer {
	c.TestDCATSchema = schema
	return c
}

func (c *TestContainer) PostgresDB() postgres.DB {
	require.NotNil(c.t, c.TestPostgresDB, "no postgres.DB set for this TestContainer")
	return c.TestPostgresDB
}

func (c *TestContainer) RecordsStore() records.Store {
	require.NotNil(c.t, c.TestRecordsStore, "no records.Store set for this TestContainer")
	return c.TestRecordsStore
}

func (c *TestContainer) Communities(_ context.Context) (service.Communities, error) {
	require.NotNil(c.t, c.TestCommunities, "no service.Communities set for this TestContainer")
	return c.TestCommunities, nil
}

func (c *TestContainer) Requests(_ context.Context) (service.Requests, error) {
	require.NotNil(c.t, c.TestRequests, "no service.Requests set for this TestContainer")
	return c.TestRequests, nil
}

func (c *TestContainer) SearchIndex(_ context.Context) (service.SearchIndex, error) {
	require.NotNil(c.t, c.TestSearchIndex, "no service.SearchIndex set for this TestContainer")
	return c.TestSearchIndex, nil
}

func (c *TestContainer) RecordCommunities(ctx context.Context) (*service.RecordCommunities, error) {
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

func (c *TestContainer) DCATSchema() *dcat.Schema {
	require.NotNil(c.t, c.TestDCATSchema, "no dcat.Schema set for this TestContainer")
	return c.TestDCATSchema
}

func (c *TestContainer) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

func (c *TestContainer) AddLoggingContext(args ...any) {
	c.logger = c.Logger().With(args...)
}

func (c *TestContainer) Logger() *slog.Logger {
	if c.logger == nil {
		c.logger = logging.Default
	}
	return c.logger
}
