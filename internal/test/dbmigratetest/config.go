package dbmigratetest

import (
	"github.com/datakeep/communities-service/internal/dbmigrate"
	"github.com/datakeep/communities-service/internal/test/configtest"
)

func Config() dbmigrate.Config {
	return dbmigrate.Config{
		PostgresDB:     configtest.PostgresDBConfig(),
		VerboseLogging: true,
	}
}
