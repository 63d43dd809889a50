package routes

import (
	"context"
	"net/http"
	"testing"

	"github.com/datakeep/communities-service/internal/api/access"
	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/search"
	"github.com/datakeep/communities-service/internal/api/service"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/datakeep/communities-service/internal/test/apitest"
	"github.com/datakeep/communities-service/internal/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRecordCommunities(t *testing.T) {
	ctx := context.Background()
	claims := apitest.DefaultClaims(test.User)

	t.Run("delegates with membership filter and query params", func(t *testing.T) {
		record := apitest.NewRecord(access.Guest)
		record.CommunityIDs = []string{"c1", "c2"}
		expectedResponse := service.CommunitySearchResponse{
			Limit:      25,
			Offset:     50,
			TotalCount: 2,
			Hits:       []service.Community{apitest.NewCommunity("public"), apitest.NewCommunity("restricted")},
		}

		container := apitest.NewTestContainer(t).
			WithRecordsStore(mocks.NewMockRecordsStore().
				WithGetRecordFunc(func(_ context.Context, _ int64, _ string) (records.Record, error) {
					return record, nil
				})).
			WithCommunities(mocks.NewMockCommunities().
				WithSearchCommunitiesFunc(func(_ context.Context, _ authn.UserClaim, filter search.Filter, params search.Params) (service.CommunitySearchResponse, error) {
					assert.Equal(t, search.Terms("id", "c1", "c2"), filter)
					assert.Equal(t, search.Params{Query: "soil", Limit: 25, Offset: 50}, params)
					return expectedResponse, nil
				})).
			WithRequests(mocks.NewMockRequests()).
			WithSearchIndex(mocks.NewMockSearchIndex())

		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetRecordCommunitiesRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, record.NodeID).
				WithQueryParam(queryQueryParamKey, "soil").
				WithIntQueryParam(limitQueryParamKey, 25).
				WithIntQueryParam(offsetQueryParamKey, 50).
				Build(),
			Container: container,
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		response, err := GetRecordCommunities(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, expectedResponse, response)
	})

	t.Run("defaults apply when no query params given", func(t *testing.T) {
		record := apitest.NewRecord(access.Guest)

		container := apitest.NewTestContainer(t).
			WithRecordsStore(mocks.NewMockRecordsStore().
				WithGetRecordFunc(func(_ context.Context, _ int64, _ string) (records.Record, error) {
					return record, nil
				})).
			WithCommunities(mocks.NewMockCommunities().
				WithSearchCommunitiesFunc(func(_ context.Context, _ authn.UserClaim, _ search.Filter, params search.Params) (service.CommunitySearchResponse, error) {
					assert.Equal(t, search.Params{Limit: defaultLimit, Offset: defaultOffset}, params)
					return service.CommunitySearchResponse{Limit: defaultLimit}, nil
				})).
			WithRequests(mocks.NewMockRequests()).
			WithSearchIndex(mocks.NewMockSearchIndex())

		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetRecordCommunitiesRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, record.NodeID).
				Build(),
			Container: container,
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		_, err := GetRecordCommunities(ctx, params)
		require.NoError(t, err)
	})

	t.Run("negative limit", func(t *testing.T) {
		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetRecordCommunitiesRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, apitest.NewRecordNodeID()).
				WithIntQueryParam(limitQueryParamKey, -1).
				Build(),
			Container: apitest.NewTestContainer(t),
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		_, err := GetRecordCommunities(ctx, params)
		var apiErr *apierrors.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("limit over max", func(t *testing.T) {
		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetRecordCommunitiesRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, apitest.NewRecordNodeID()).
				WithIntQueryParam(limitQueryParamKey, maxLimit+1).
				Build(),
			Container: apitest.NewTestContainer(t),
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		_, err := GetRecordCommunities(ctx, params)
		var apiErr *apierrors.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("caller with no standing", func(t *testing.T) {
		record := apitest.NewRecord(access.None)
		container := apitest.NewTestContainer(t).
			WithRecordsStore(mocks.NewMockRecordsStore().
				WithGetRecordFunc(func(_ context.Context, _ int64, _ string) (records.Record, error) {
					return record, nil
				})).
			WithCommunities(mocks.NewMockCommunities()).
			WithRequests(mocks.NewMockRequests()).
			WithSearchIndex(mocks.NewMockSearchIndex())

		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetRecordCommunitiesRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, record.NodeID).
				Build(),
			Container: container,
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		_, err := GetRecordCommunities(ctx, params)
		var apiErr *apierrors.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})
}
