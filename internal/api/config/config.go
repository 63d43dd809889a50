package config

import (
	"fmt"

	sharedconfig "github.com/datakeep/communities-service/internal/shared/config"
)

type Config struct {
	PostgresDB sharedconfig.PostgresDBConfig
	Datakeep   DatakeepConfig
}

func LoadConfig() (Config, error) {
	postgresConfig, err := sharedconfig.NewPostgresDBConfig().Load()
	if err != nil {
		return Config{}, fmt.Errorf("error loading PostgresDB config: %w", err)
	}
	datakeepConfig, err := NewDatakeepConfig().Load()
	if err != nil {
		return Config{}, fmt.Errorf("error loading Datakeep config: %w", err)
	}
	return Config{
		PostgresDB: postgresConfig,
		Datakeep:   datakeepConfig,
	}, nil
}
