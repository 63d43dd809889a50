package config

import sharedconfig "github.com/datakeep/communities-service/internal/shared/config"

const EnvironmentKey = "ENVIRONMENT"
const SiteHostKey = "SITE_HOST"
const CommunitiesServiceHostKey = "COMMUNITIES_SERVICE_HOST"
const RequestsServiceHostKey = "REQUESTS_SERVICE_HOST"
const SearchIndexHostKey = "SEARCH_INDEX_HOST"
const MaxCommunityAdditionsKey = "MAX_COMMUNITY_ADDITIONS"
const MaxCommunityRemovalsKey = "MAX_COMMUNITY_REMOVALS"

const DefaultMaxCommunityOperations = "10"

type DatakeepEnvironmentSettings struct {
	Environment            sharedconfig.EnvironmentSetting
	SiteHost               sharedconfig.EnvironmentSetting
	CommunitiesServiceHost sharedconfig.EnvironmentSetting
	RequestsServiceHost    sharedconfig.EnvironmentSetting
	SearchIndexHost        sharedconfig.EnvironmentSetting
	MaxCommunityAdditions  sharedconfig.EnvironmentSetting
	MaxCommunityRemovals   sharedconfig.EnvironmentSetting
}

var DeployedDatakeepEnvironmentSettings = DatakeepEnvironmentSettings{
	Environment:            sharedconfig.NewEnvironmentSetting(EnvironmentKey),
	SiteHost:               sharedconfig.NewEnvironmentSetting(SiteHostKey),
	CommunitiesServiceHost: sharedconfig.NewEnvironmentSetting(CommunitiesServiceHostKey),
	RequestsServiceHost:    sharedconfig.NewEnvironmentSetting(RequestsServiceHostKey),
	SearchIndexHost:        sharedconfig.NewEnvironmentSetting(SearchIndexHostKey),
	MaxCommunityAdditions:  sharedconfig.NewEnvironmentSettingWithDefault(MaxCommunityAdditionsKey, DefaultMaxCommunityOperations),
	MaxCommunityRemovals:   sharedconfig.NewEnvironmentSettingWithDefault(MaxCommunityRemovalsKey, DefaultMaxCommunityOperations),
}
