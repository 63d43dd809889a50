package test

import (
	"context"
	"fmt"

	"github.com/datakeep/communities-service/internal/shared/config"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type PostgresDB struct {
	host     string
	port     int
	user     string
	password string
}

func NewPostgresDB(host string, port int, user string, password string) *PostgresDB {
	return &PostgresDB{
		host,
		port,
		user,
		password,
	}
}

func NewPostgresDBFromConfig(t require.TestingT, postgresDBConfig config.PostgresDBConfig) *PostgresDB {
	Helper(t)
	require.NotNil(t, postgresDBConfig.Password, "config has no password; only password auth is supported in tests")
	return NewPostgresDB(
		postgresDBConfig.Host,
		postgresDBConfig.Port,
		postgresDBConfig.User,
		*postgresDBConfig.Password)
}

func (db *PostgresDB) Connect(ctx context.Context, databaseName string) (*pgx.Conn, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		db.host, db.port, db.user, db.password, databaseName,
	)

	return pgx.Connect(ctx, dsn)
}

func CloseConnection(ctx context.Context, t require.TestingT, conn *pgx.Conn) {
	Helper(t)
	require.NoError(t, conn.Close(ctx))
}
