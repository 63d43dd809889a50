package dbmigratetest

import (
	"github.com/datakeep/communities-service/internal/dbmigrate"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/stretchr/testify/require"
)

func Close(t require.TestingT, migrator *dbmigrate.RecordsMigrator) {
	test.Helper(t)
	srcErr, dbErr := migrator.Close()
	require.NoError(t, srcErr)
	require.NoError(t, dbErr)
}
