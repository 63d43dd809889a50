package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/datakeep/communities-service/internal/shared/clients/postgres"
	"github.com/jackc/pgx/v5"
)

type Store interface {
	// GetRecord returns the record with the given node id along with its file
	// entries, its community membership IDs in the order they were added, and
	// the calling user's role on the record. Returns ErrRecordNotFound if no
	// such record exists.
	GetRecord(ctx context.Context, userID int64, nodeID string) (Record, error)
	// RemoveCommunities deletes the given community memberships of the record
	// in a single statement.
	RemoveCommunities(ctx context.Context, recordID int64, communityIDs []string) error
}

type PostgresStore struct {
	db           postgres.DB
	databaseName string
	logger       *slog.Logger
}

func NewPostgresStore(db postgres.DB, recordsDatabaseName string, logger *slog.Logger) *PostgresStore {
	return &PostgresStore{
		db:           db,
		databaseName: recordsDatabaseName,
		logger:       logger.With(slog.String("type", "records.PostgresStore")),
	}
}

func (s *PostgresStore) GetRecord(ctx context.Context, userID int64, nodeID string) (Record, error) {
	conn, err := s.db.Connect(ctx, s.databaseName)
	if err != nil {
		return Record{}, fmt.Errorf("GetRecord error connecting to database %s: %w", s.databaseName, err)
	}
	defer s.closeConn(ctx, conn)

	getRecordSQL := `SELECT r.id, r.node_id, r.title, r.creators, r.publisher, r.publication_year,
				r.doi, r.visibility, r.files_enabled, u.role
			FROM records.records r
				LEFT JOIN records.record_user u ON r.id = u.record_id AND u.user_id = @user_id
			WHERE r.node_id = @node_id`

	record := Record{}
	var roleColumn *string
	err = conn.QueryRow(ctx, getRecordSQL, pgx.NamedArgs{"user_id": userID, "node_id": nodeID}).
		Scan(&record.ID, &record.NodeID, &record.Title, &record.Creators, &record.Publisher,
			&record.PublicationYear, &record.DOI, &record.Visibility, &record.FilesEnabled, &roleColumn)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("error querying record %s: %w", nodeID, err)
	}
	record.CallerRole = roleFromColumn(roleColumn)

	// stored file entries are keyed by filename; keep them in key order
	fileRows, _ := conn.Query(ctx,
		`SELECT key, size FROM records.record_files WHERE record_id = @record_id ORDER BY key asc`,
		pgx.NamedArgs{"record_id": record.ID})
	record.Files, err = pgx.CollectRows(fileRows, func(row pgx.CollectableRow) (File, error) {
		var file File
		err := row.Scan(&file.Key, &file.Size)
		return file, err
	})
	if err != nil {
		return Record{}, fmt.Errorf("error querying files of record %s: %w", nodeID, err)
	}

	communityRows, _ := conn.Query(ctx,
		`SELECT community_id FROM records.record_communities WHERE record_id = @record_id ORDER BY added_at asc, id asc`,
		pgx.NamedArgs{"record_id": record.ID})
	record.CommunityIDs, err = pgx.CollectRows(communityRows, func(row pgx.CollectableRow) (string, error) {
		var communityID string
		err := row.Scan(&communityID)
		return communityID, err
	})
	if err != nil {
		return Record{}, fmt.Errorf("error querying communities of record %s: %w", nodeID, err)
	}

	return record, nil
}

func (s *PostgresStore) RemoveCommunities(ctx context.Context, recordID int64, communityIDs []string) error {
	if len(communityIDs) == 0 {
		return nil
	}
	conn, err := s.db.Connect(ctx, s.databaseName)
	if err != nil {
		return fmt.Errorf("RemoveCommunities error connecting to database %s: %w", s.databaseName, err)
	}
	defer s.closeConn(ctx, conn)

	commandTag, err := conn.Exec(ctx,
		`DELETE FROM records.record_communities WHERE record_id = @record_id AND community_id = ANY(@community_ids)`,
		pgx.NamedArgs{"record_id": recordID, "community_ids": communityIDs})
	if err != nil {
		return fmt.Errorf("RemoveCommunities error deleting memberships of record %d: %w", recordID, err)
	}
	s.logger.Debug("removed record communities",
		slog.Int64("recordId", recordID),
		slog.Int64("removed", commandTag.RowsAffected()))
	return nil
}

func (s *PostgresStore) closeConn(ctx context.Context, conn *pgx.Conn) {
	if err := conn.Close(ctx); err != nil {
		s.logger.Warn("error closing records.PostgresStore DB connection", slog.Any("error", err))
	}
}
