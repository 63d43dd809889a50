package dbmigrate

import (
	"fmt"

	"github.com/datakeep/communities-service/internal/shared/config"
)

const VerboseLoggingKey = "VERBOSE_LOGGING"

type Config struct {
	PostgresDB     config.PostgresDBConfig
	VerboseLogging bool
}

func LoadConfig() (Config, error) {
	isVerbose, err := config.NewEnvironmentSettingWithDefault(VerboseLoggingKey, "false").GetBool()
	if err != nil {
		return Config{}, fmt.Errorf("error reading %s: %w", VerboseLoggingKey, err)
	}
	postgresDBConfig, err := config.NewPostgresDBConfig().Load()
	if err != nil {
		return Config{}, err
	}
	return Config{
		PostgresDB:     postgresDBConfig,
		VerboseLogging: isVerbose,
	}, nil
}
