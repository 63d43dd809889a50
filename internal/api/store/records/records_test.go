package records_test

import (
	"context"
	"testing"

	"github.com/datakeep/communities-service/internal/api/access"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/dbmigrate"
	"github.com/datakeep/communities-service/internal/shared/logging"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/datakeep/communities-service/internal/test/apitest"
	"github.com/datakeep/communities-service/internal/test/dbmigratetest"
	"github.com/datakeep/communities-service/internal/test/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore(t *testing.T) {
	ctx := context.Background()

	migrateConfig := dbmigratetest.Config()
	migrator, err := dbmigrate.NewLocalRecordsMigrator(ctx, migrateConfig)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, migrator.Drop())
		dbmigratetest.Close(t, migrator)
	})
	require.NoError(t, migrator.Up())

	postgresDBConfig := migrateConfig.PostgresDB

	for _, tt := range []struct {
		scenario string
		tstFunc  func(t *testing.T, recordsStore *records.PostgresStore, expectationDB *fixtures.ExpectationDB)
	}{
		{"get record, none", testGetRecordNone},
		{"get record", testGetRecord},
		{"get record, caller without a role", testGetRecordNoRole},
		{"get record, files in key order", testGetRecordFileOrder},
		{"get record, communities in added order", testGetRecordCommunityOrder},
		{"remove communities", testRemoveCommunities},
		{"remove communities, empty batch is a no-op", testRemoveCommunitiesEmpty},
		{"remove communities, only the given memberships", testRemoveCommunitiesSubset},
	} {
		t.Run(tt.scenario, func(t *testing.T) {
			db := test.NewPostgresDBFromConfig(t, postgresDBConfig)
			expectationDB := fixtures.NewExpectationDB(db, postgresDBConfig.RecordsDatabase)
			t.Cleanup(func() {
				expectationDB.CleanUp(ctx, t)
			})

			recordsStore := records.NewPostgresStore(db, postgresDBConfig.RecordsDatabase, logging.Default)

			tt.tstFunc(t, recordsStore, expectationDB)
		})
	}
}

func testGetRecordNone(t *testing.T, store *records.PostgresStore, _ *fixtures.ExpectationDB) {
	ctx := context.Background()

	_, err := store.GetRecord(ctx, test.User.ID, apitest.NewRecordNodeID())
	require.ErrorIs(t, err, records.ErrRecordNotFound)
}

func testGetRecord(t *testing.T, store *records.PostgresStore, expectationDB *fixtures.ExpectationDB) {
	ctx := context.Background()

	expected := fixtures.NewExpectedRecord().
		WithDOI("10.1234/dk.abc123").
		WithFiles(records.File{Key: "data.csv", Size: 512}).
		WithUser(test.User.ID, access.Editor).
		WithCommunities("astronomy")
	recordID := expectationDB.CreateRecord(ctx, t, expected)

	record, err := store.GetRecord(ctx, test.User.ID, expected.NodeID)
	require.NoError(t, err)

	assert.Equal(t, recordID, record.ID)
	assert.Equal(t, expected.NodeID, record.NodeID)
	assert.Equal(t, expected.Title, record.Title)
	assert.Equal(t, expected.Creators, record.Creators)
	assert.Equal(t, expected.Publisher, record.Publisher)
	assert.Equal(t, expected.PublicationYear, record.PublicationYear)
	require.NotNil(t, record.DOI)
	assert.Equal(t, *expected.DOI, *record.DOI)
	assert.Equal(t, records.PublicVisibility, record.Visibility)
	assert.True(t, record.FilesEnabled)
	assert.Equal(t, expected.Files, record.Files)
	assert.Equal(t, []string{"astronomy"}, record.CommunityIDs)
	assert.Equal(t, access.Editor, record.CallerRole)
}

func testGetRecordNoRole(t *testing.T, store *records.PostgresStore, expectationDB *fixtures.ExpectationDB) {
	ctx := context.Background()

	expected := fixtures.NewExpectedRecord().WithUser(test.User.ID, access.Owner)
	expectationDB.CreateRecord(ctx, t, expected)

	record, err := store.GetRecord(ctx, test.User2.ID, expected.NodeID)
	require.NoError(t, err)

	assert.Equal(t, access.None, record.CallerRole)
	assert.Nil(t, record.DOI)
	assert.Empty(t, record.Files)
	assert.Empty(t, record.CommunityIDs)
}

func testGetRecordFileOrder(t *testing.T, store *records.PostgresStore, expectationDB *fixtures.ExpectationDB) {
	ctx := context.Background()

	expected := fixtures.NewExpectedRecord().
		WithFiles(
			records.File{Key: "z-readme.txt", Size: 10},
			records.File{Key: "a-data.csv", Size: 2048},
			records.File{Key: "m-figure.png", Size: 1024},
		).
		WithUser(test.User.ID, access.Viewer)
	expectationDB.CreateRecord(ctx, t, expected)

	record, err := store.GetRecord(ctx, test.User.ID, expected.NodeID)
	require.NoError(t, err)

	assert.Equal(t, []records.File{
		{Key: "a-data.csv", Size: 2048},
		{Key: "m-figure.png", Size: 1024},
		{Key: "z-readme.txt", Size: 10},
	}, record.Files)
}

func testGetRecordCommunityOrder(t *testing.T, store *records.PostgresStore, expectationDB *fixtures.ExpectationDB) {
	ctx := context.Background()

	expected := fixtures.NewExpectedRecord().
		WithUser(test.User.ID, access.Manager).
		WithCommunities("zoology", "astronomy", "medicine")
	expectationDB.CreateRecord(ctx, t, expected)

	record, err := store.GetRecord(ctx, test.User.ID, expected.NodeID)
	require.NoError(t, err)

	assert.Equal(t, []string{"zoology", "astronomy", "medicine"}, record.CommunityIDs)
}

func testRemoveCommunities(t *testing.T, store *records.PostgresStore, expectationDB *fixtures.ExpectationDB) {
	ctx := context.Background()

	expected := fixtures.NewExpectedRecord().
		WithUser(test.User.ID, access.Editor).
		WithCommunities("astronomy", "medicine")
	recordID := expectationDB.CreateRecord(ctx, t, expected)

	require.NoError(t, store.RemoveCommunities(ctx, recordID, []string{"astronomy", "medicine"}))

	assert.Empty(t, expectationDB.GetCommunityIDs(ctx, t, recordID))
}

func testRemoveCommunitiesEmpty(t *testing.T, store *records.PostgresStore, expectationDB *fixtures.ExpectationDB) {
	ctx := context.Background()

	expected := fixtures.NewExpectedRecord().
		WithUser(test.User.ID, access.Editor).
		WithCommunities("astronomy")
	recordID := expectationDB.CreateRecord(ctx, t, expected)

	require.NoError(t, store.RemoveCommunities(ctx, recordID, nil))

	assert.Equal(t, []string{"astronomy"}, expectationDB.GetCommunityIDs(ctx, t, recordID))
}

func testRemoveCommunitiesSubset(t *testing.T, store *records.PostgresStore, expectationDB *fixtures.ExpectationDB) {
	ctx := context.Background()

	expected := fixtures.NewExpectedRecord().
		WithUser(test.User.ID, access.Editor).
		WithCommunities("astronomy", "medicine", "zoology")
	recordID := expectationDB.CreateRecord(ctx, t, expected)

	other := fixtures.NewExpectedRecord().WithCommunities("astronomy")
	otherID := expectationDB.CreateRecord(ctx, t, other)

	require.NoError(t, store.RemoveCommunities(ctx, recordID, []string{"medicine", "unknown"}))

	assert.Equal(t, []string{"astronomy", "zoology"}, expectationDB.GetCommunityIDs(ctx, t, recordID))
	assert.Equal(t, []string{"astronomy"}, expectationDB.GetCommunityIDs(ctx, t, otherID))
}
