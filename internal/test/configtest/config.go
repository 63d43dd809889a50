package configtest

import "github.com/datakeep/communities-service/internal/shared/config"

func PostgresDBConfig() config.PostgresDBConfig {
	return config.NewPostgresDBConfig(
		config.WithHost("localhost"),
		config.WithPort(5432),
		config.WithUser("postgres"),
		config.WithPassword("password"),
		config.WithRecordsDatabase("communities_postgres"),
	)
}
