package postgres

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/rds/auth"
	"github.com/jackc/pgx/v5"
)

type DB interface {
	Connect(ctx context.Context, databaseName string) (*pgx.Conn, error)
}

// RDSProxy connects through an AWS RDS proxy using IAM auth tokens instead of
// a password.
type RDSProxy struct {
	config aws.Config
	host   string
	port   int
	user   string
}

func NewRDSProxy(config aws.Config, host string, port int, user string) *RDSProxy {
	return &RDSProxy{
		config,
		host,
		port,
		user,
	}
}

func (db *RDSProxy) Connect(ctx context.Context, databaseName string) (*pgx.Conn, error) {
	authenticationToken, err := auth.BuildAuthToken(
		ctx,
		fmt.Sprintf("%s:%d", db.host, db.port),
		db.config.Region,
		db.user,
		db.config.Credentials,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create authentication token: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		db.host, db.port, db.user, authenticationToken, databaseName,
	)

	return pgx.Connect(ctx, dsn)
}

// Local connects with plain password auth. Used for local development and tests.
type Local struct {
	host     string
	port     int
	user     string
	password string
}

func NewLocal(host string, port int, user, password string) *Local {
	return &Local{
		host:     host,
		port:     port,
		user:     user,
		password: password,
	}
}

func (db *Local) Connect(ctx context.Context, databaseName string) (*pgx.Conn, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		db.host, db.port, db.user, db.password, databaseName,
	)
	return pgx.Connect(ctx, dsn)
}
