package fixtures

import (
	"context"
	"fmt"

	"github.com/datakeep/communities-service/internal/api/access"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/datakeep/communities-service/internal/test/apitest"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// ExpectedRecord is a record to seed into the test database, along with the
// rows the seeding should produce.
type ExpectedRecord struct {
	NodeID          string
	Title           string
	Creators        []string
	Publisher       string
	PublicationYear int
	DOI             *string
	Visibility      records.Visibility
	FilesEnabled    bool
	Files           []records.File
	Users           []ExpectedUser
	CommunityIDs    []string
}

func NewExpectedRecord() *ExpectedRecord {
	return &ExpectedRecord{
		NodeID:          apitest.NewRecordNodeID(),
		Title:           uuid.NewString(),
		Creators:        []string{uuid.NewString()},
		Publisher:       uuid.NewString(),
		PublicationYear: 2026,
		Visibility:      records.PublicVisibility,
		FilesEnabled:    true,
	}
}

type ExpectedUser struct {
	UserID int64
	Role   access.Role
}

func (r *ExpectedRecord) WithDOI(doi string) *ExpectedRecord {
	r.DOI = &doi
	return r
}

func (r *ExpectedRecord) WithVisibility(visibility records.Visibility) *ExpectedRecord {
	r.Visibility = visibility
	return r
}

func (r *ExpectedRecord) WithFilesEnabled(filesEnabled bool) *ExpectedRecord {
	r.FilesEnabled = filesEnabled
	return r
}

func (r *ExpectedRecord) WithFiles(files ...records.File) *ExpectedRecord {
	r.Files = append(r.Files, files...)
	return r
}

func (r *ExpectedRecord) WithUser(userID int64, role access.Role) *ExpectedRecord {
	r.Users = append(r.Users, ExpectedUser{userID, role})
	return r
}

func (r *ExpectedRecord) WithCommunities(communityIDs ...string) *ExpectedRecord {
	r.CommunityIDs = append(r.CommunityIDs, communityIDs...)
	return r
}

// ExpectationDB seeds and inspects the records schema of the test database.
type ExpectationDB struct {
	db     *test.PostgresDB
	dbName string
}

func NewExpectationDB(db *test.PostgresDB, dbName string) *ExpectationDB {
	return &ExpectationDB{
		db:     db,
		dbName: dbName,
	}
}

func (e *ExpectationDB) Connect(ctx context.Context, t require.TestingT) *pgx.Conn {
	test.Helper(t)
	conn, err := e.db.Connect(ctx, e.dbName)
	require.NoError(t, err)
	return conn
}

// CreateRecord inserts the expected record and its related rows, returning
// the generated record id.
func (e *ExpectationDB) CreateRecord(ctx context.Context, t require.TestingT, expected *ExpectedRecord) int64 {
	test.Helper(t)
	conn := e.Connect(ctx, t)
	defer test.CloseConnection(ctx, t, conn)

	var recordID int64
	require.NoError(t, conn.QueryRow(ctx,
		`INSERT INTO records.records (node_id, title, creators, publisher, publication_year, doi, visibility, files_enabled)
			VALUES (@node_id, @title, @creators, @publisher, @publication_year, @doi, @visibility, @files_enabled)
			RETURNING id`,
		pgx.NamedArgs{
			"node_id":          expected.NodeID,
			"title":            expected.Title,
			"creators":         expected.Creators,
			"publisher":        expected.Publisher,
			"publication_year": expected.PublicationYear,
			"doi":              expected.DOI,
			"visibility":       string(expected.Visibility),
			"files_enabled":    expected.FilesEnabled,
		}).Scan(&recordID))

	for _, file := range expected.Files {
		tag, err := conn.Exec(ctx,
			`INSERT INTO records.record_files (record_id, key, size) VALUES (@record_id, @key, @size)`,
			pgx.NamedArgs{"record_id": recordID, "key": file.Key, "size": file.Size})
		require.NoError(t, err, "error adding file %s to record %d", file.Key, recordID)
		require.Equal(t, int64(1), tag.RowsAffected())
	}

	for _, user := range expected.Users {
		tag, err := conn.Exec(ctx,
			`INSERT INTO records.record_user (record_id, user_id, role) VALUES (@record_id, @user_id, @role)`,
			pgx.NamedArgs{"record_id": recordID, "user_id": user.UserID, "role": user.Role.String()})
		require.NoError(t, err, "error adding user %d to record %d", user.UserID, recordID)
		require.Equal(t, int64(1), tag.RowsAffected())
	}

	// memberships are inserted one at a time so added_at ordering follows the slice order
	for _, communityID := range expected.CommunityIDs {
		tag, err := conn.Exec(ctx,
			`INSERT INTO records.record_communities (record_id, community_id, added_at) VALUES (@record_id, @community_id, clock_timestamp())`,
			pgx.NamedArgs{"record_id": recordID, "community_id": communityID})
		require.NoError(t, err, "error adding community %s to record %d", communityID, recordID)
		require.Equal(t, int64(1), tag.RowsAffected())
	}

	return recordID
}

// GetCommunityIDs returns the record's membership IDs in added order.
func (e *ExpectationDB) GetCommunityIDs(ctx context.Context, t require.TestingT, recordID int64) []string {
	test.Helper(t)
	conn := e.Connect(ctx, t)
	defer test.CloseConnection(ctx, t, conn)

	rows, err := conn.Query(ctx,
		`SELECT community_id FROM records.record_communities WHERE record_id = @record_id ORDER BY added_at asc, id asc`,
		pgx.NamedArgs{"record_id": recordID})
	require.NoError(t, err)
	communityIDs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var communityID string
		err := row.Scan(&communityID)
		return communityID, err
	})
	require.NoError(t, err)
	return communityIDs
}

// CleanUp empties all the records schema tables.
func (e *ExpectationDB) CleanUp(ctx context.Context, t require.TestingT) {
	test.Helper(t)
	conn := e.Connect(ctx, t)
	defer test.CloseConnection(ctx, t, conn)

	for _, table := range []string{"record_communities", "record_user", "record_files", "records"} {
		_, err := conn.Exec(ctx, fmt.Sprintf("DELETE FROM records.%s", table))
		require.NoError(t, err)
	}
}
