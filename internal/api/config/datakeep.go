package config

import (
	"fmt"
	"strings"

	sharedconfig "github.com/datakeep/communities-service/internal/shared/config"
)

// DatakeepConfig holds the locations of the sibling Datakeep services and the
// membership batch limits.
type DatakeepConfig struct {
	// SiteURL is the base URL of the repository UI, used to build public file
	// download links.
	SiteURL               string
	CommunitiesServiceURL string
	RequestsServiceURL    string
	SearchIndexURL        string
	// JWTSecretKey signs service-to-service tokens. Stored in SSM, so only
	// looked up when a client is actually built.
	JWTSecretKey          *sharedconfig.SSMSetting
	MaxCommunityAdditions int
	MaxCommunityRemovals  int
}

func NewDatakeepConfig(options ...DatakeepOption) DatakeepConfig {
	datakeepConfig := DatakeepConfig{}
	for _, option := range options {
		option(&datakeepConfig)
	}
	return datakeepConfig
}

type DatakeepOption func(datakeepConfig *DatakeepConfig)

func WithSiteURL(url string) DatakeepOption {
	return func(datakeepConfig *DatakeepConfig) {
		datakeepConfig.SiteURL = url
	}
}

func WithCommunitiesServiceURL(url string) DatakeepOption {
	return func(datakeepConfig *DatakeepConfig) {
		datakeepConfig.CommunitiesServiceURL = url
	}
}

func WithRequestsServiceURL(url string) DatakeepOption {
	return func(datakeepConfig *DatakeepConfig) {
		datakeepConfig.RequestsServiceURL = url
	}
}

func WithSearchIndexURL(url string) DatakeepOption {
	return func(datakeepConfig *DatakeepConfig) {
		datakeepConfig.SearchIndexURL = url
	}
}

func WithJWTSecretKey(setting *sharedconfig.SSMSetting) DatakeepOption {
	return func(datakeepConfig *DatakeepConfig) {
		datakeepConfig.JWTSecretKey = setting
	}
}

func WithMaxCommunityAdditions(max int) DatakeepOption {
	return func(datakeepConfig *DatakeepConfig) {
		datakeepConfig.MaxCommunityAdditions = max
	}
}

func WithMaxCommunityRemovals(max int) DatakeepOption {
	return func(datakeepConfig *DatakeepConfig) {
		datakeepConfig.MaxCommunityRemovals = max
	}
}

// LoadWithEnvSettings returns a copy of this DatakeepConfig where any missing
// fields are populated by the given DatakeepEnvironmentSettings.
func (c DatakeepConfig) LoadWithEnvSettings(environmentSettings DatakeepEnvironmentSettings) (DatakeepConfig, error) {
	if len(c.SiteURL) == 0 {
		url, err := environmentSettings.SiteHost.Get()
		if err != nil {
			return DatakeepConfig{}, err
		}
		c.SiteURL = ensureScheme(url)
	}
	if len(c.CommunitiesServiceURL) == 0 {
		url, err := environmentSettings.CommunitiesServiceHost.Get()
		if err != nil {
			return DatakeepConfig{}, err
		}
		c.CommunitiesServiceURL = ensureScheme(url)
	}
	if len(c.RequestsServiceURL) == 0 {
		url, err := environmentSettings.RequestsServiceHost.Get()
		if err != nil {
			return DatakeepConfig{}, err
		}
		c.RequestsServiceURL = ensureScheme(url)
	}
	if len(c.SearchIndexURL) == 0 {
		url, err := environmentSettings.SearchIndexHost.Get()
		if err != nil {
			return DatakeepConfig{}, err
		}
		c.SearchIndexURL = ensureScheme(url)
	}
	if c.JWTSecretKey == nil {
		environment, err := environmentSettings.Environment.Get()
		if err != nil {
			return DatakeepConfig{}, err
		}
		c.JWTSecretKey = sharedconfig.NewSSMSetting("communities-service", "jwt-secret-key").
			WithEnvironment(environment)
	}
	if c.MaxCommunityAdditions == 0 {
		max, err := environmentSettings.MaxCommunityAdditions.GetInt()
		if err != nil {
			return DatakeepConfig{}, err
		}
		c.MaxCommunityAdditions = max
	}
	if c.MaxCommunityRemovals == 0 {
		max, err := environmentSettings.MaxCommunityRemovals.GetInt()
		if err != nil {
			return DatakeepConfig{}, err
		}
		c.MaxCommunityRemovals = max
	}
	return c, nil
}

// Load returns a copy of this DatakeepConfig where any missing fields are
// populated by the DeployedDatakeepEnvironmentSettings.
func (c DatakeepConfig) Load() (DatakeepConfig, error) {
	return c.LoadWithEnvSettings(DeployedDatakeepEnvironmentSettings)
}

func ensureScheme(url string) string {
	if !strings.HasPrefix(url, "http") {
		return fmt.Sprintf("https://%s", url)
	}
	return url
}
