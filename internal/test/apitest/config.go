package apitest

import (
	"github.com/datakeep/communities-service/internal/api/config"
	sharedconfig "github.com/datakeep/communities-service/internal/shared/config"
	"github.com/datakeep/communities-service/internal/test/configtest"
)

const TestJWTSecretKey = "test-jwt-secret-key"

const TestSiteURL = "https://datakeep.example.org"

// Config returns a config.Config suitable for tests. It is preferred over
// config.LoadConfig() because that reads deployment environment variables that
// are not set when tests run locally.
func Config() config.Config {
	return config.Config{
		PostgresDB: configtest.PostgresDBConfig(),
		Datakeep:   DatakeepConfig(),
	}
}

func DatakeepConfig(options ...config.DatakeepOption) config.DatakeepConfig {
	defaults := []config.DatakeepOption{
		config.WithSiteURL(TestSiteURL),
		config.WithCommunitiesServiceURL("https://communities.datakeep.example.org"),
		config.WithRequestsServiceURL("https://requests.datakeep.example.org"),
		config.WithSearchIndexURL("https://search.datakeep.example.org"),
		config.WithJWTSecretKey(sharedconfig.NewSSMSetting("communities-service", "jwt-secret-key").WithValue(TestJWTSecretKey)),
		config.WithMaxCommunityAdditions(10),
		config.WithMaxCommunityRemovals(10),
	}
	return config.NewDatakeepConfig(append(defaults, options...)...)
}
