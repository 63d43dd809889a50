package config_test

import (
	"fmt"
	"testing"

	"github.com/datakeep/communities-service/internal/api/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatakeepConfig_Load(t *testing.T) {
	expectedEnvironment := uuid.NewString()
	expectedSiteHost := uuid.NewString()
	expectedCommunitiesHost := uuid.NewString()
	expectedRequestsHost := uuid.NewString()
	expectedSearchIndexHost := uuid.NewString()

	t.Setenv(config.EnvironmentKey, expectedEnvironment)
	t.Setenv(config.SiteHostKey, expectedSiteHost)
	t.Setenv(config.CommunitiesServiceHostKey, expectedCommunitiesHost)
	t.Setenv(config.RequestsServiceHostKey, expectedRequestsHost)
	t.Setenv(config.SearchIndexHostKey, expectedSearchIndexHost)

	actualConfig, err := config.NewDatakeepConfig().Load()
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("https://%s", expectedSiteHost), actualConfig.SiteURL)
	assert.Equal(t, fmt.Sprintf("https://%s", expectedCommunitiesHost), actualConfig.CommunitiesServiceURL)
	assert.Equal(t, fmt.Sprintf("https://%s", expectedRequestsHost), actualConfig.RequestsServiceURL)
	assert.Equal(t, fmt.Sprintf("https://%s", expectedSearchIndexHost), actualConfig.SearchIndexURL)

	assert.Equal(t, 10, actualConfig.MaxCommunityAdditions)
	assert.Equal(t, 10, actualConfig.MaxCommunityRemovals)

	require.NotNil(t, actualConfig.JWTSecretKey)
	if assert.NotNil(t, actualConfig.JWTSecretKey.Environment) {
		assert.Equal(t, expectedEnvironment, *actualConfig.JWTSecretKey.Environment)
	}
	assert.Equal(t, "communities-service", actualConfig.JWTSecretKey.Service)
	assert.Equal(t, "jwt-secret-key", actualConfig.JWTSecretKey.Name)
}

func TestDatakeepConfig_Load_KeepsSetValues(t *testing.T) {
	t.Setenv(config.EnvironmentKey, uuid.NewString())
	t.Setenv(config.SiteHostKey, uuid.NewString())
	t.Setenv(config.CommunitiesServiceHostKey, uuid.NewString())
	t.Setenv(config.RequestsServiceHostKey, uuid.NewString())
	t.Setenv(config.SearchIndexHostKey, uuid.NewString())
	t.Setenv(config.MaxCommunityAdditionsKey, "25")

	expectedSiteURL := "http://localhost:5000"
	actualConfig, err := config.NewDatakeepConfig(
		config.WithSiteURL(expectedSiteURL),
		config.WithMaxCommunityRemovals(3),
	).Load()
	require.NoError(t, err)

	assert.Equal(t, expectedSiteURL, actualConfig.SiteURL)
	assert.Equal(t, 25, actualConfig.MaxCommunityAdditions)
	assert.Equal(t, 3, actualConfig.MaxCommunityRemovals)
}

func TestDatakeepConfig_Load_SchemeKept(t *testing.T) {
	t.Setenv(config.EnvironmentKey, uuid.NewString())
	t.Setenv(config.SiteHostKey, "http://localhost:5000")
	t.Setenv(config.CommunitiesServiceHostKey, uuid.NewString())
	t.Setenv(config.RequestsServiceHostKey, uuid.NewString())
	t.Setenv(config.SearchIndexHostKey, uuid.NewString())

	actualConfig, err := config.NewDatakeepConfig().Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", actualConfig.SiteURL)
}
