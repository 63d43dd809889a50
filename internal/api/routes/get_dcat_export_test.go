package routes

import (
	"context"
	"net/http"
	"testing"

	"github.com/datakeep/communities-service/internal/api/access"
	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/serializers/dcat"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/datakeep/communities-service/internal/test/apitest"
	"github.com/datakeep/communities-service/internal/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDCATExport(t *testing.T) {
	ctx := context.Background()
	claims := apitest.DefaultClaims(test.User)

	newContainer := func(t *testing.T, record records.Record) *apitest.TestContainer {
		return apitest.NewTestContainer(t).
			WithRecordsStore(mocks.NewMockRecordsStore().
				WithGetRecordFunc(func(_ context.Context, _ int64, _ string) (records.Record, error) {
					return record, nil
				})).
			WithDCATSchema(dcat.NewSchema(apitest.TestSiteURL))
	}

	t.Run("serializes the record with its files", func(t *testing.T) {
		testDOI := "10.1234/abcd.5678"
		record := apitest.NewRecord(access.Viewer)
		record.DOI = &testDOI
		record.Files = []records.File{{Key: "data.csv", Size: 2048}}

		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetDCATExportRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, record.NodeID).
				Build(),
			Container: newContainer(t, record),
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		document, err := GetDCATExport(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, record.NodeID, document.ID)
		require.Len(t, document.Files, 1)
		assert.Equal(t, "2048", document.Files[0].Size)
		require.NotNil(t, document.Files[0].AccessURL)
		assert.Equal(t, "https://doi.org/10.1234/abcd.5678", *document.Files[0].AccessURL)
		assert.Equal(t, apitest.TestSiteURL+"/records/"+record.NodeID+"/files/data.csv", document.Files[0].DownloadURL)
	})

	t.Run("caller with no standing", func(t *testing.T) {
		record := apitest.NewRecord(access.None)

		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetDCATExportRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, record.NodeID).
				Build(),
			Container: newContainer(t, record),
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		_, err := GetDCATExport(ctx, params)
		var apiErr *apierrors.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	})

	t.Run("super admin can export without a role", func(t *testing.T) {
		superClaims := apitest.DefaultClaims(test.SuperUser)
		record := apitest.NewRecord(access.None)

		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetDCATExportRouteKey).
				WithClaims(superClaims).
				WithPathParam(RecordIDPathParamKey, record.NodeID).
				Build(),
			Container: newContainer(t, record),
			Config:    apitest.Config(),
			Claims:    &superClaims,
		}

		document, err := GetDCATExport(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, record.NodeID, document.ID)
	})

	t.Run("non-existent record", func(t *testing.T) {
		nodeID := apitest.NewRecordNodeID()
		container := apitest.NewTestContainer(t).
			WithRecordsStore(mocks.NewMockRecordsStore().
				WithGetRecordFunc(func(_ context.Context, _ int64, _ string) (records.Record, error) {
					return records.Record{}, records.ErrRecordNotFound
				}))

		params := Params{
			Request: apitest.NewAPIGatewayRequestBuilder(GetDCATExportRouteKey).
				WithClaims(claims).
				WithPathParam(RecordIDPathParamKey, nodeID).
				Build(),
			Container: container,
			Config:    apitest.Config(),
			Claims:    &claims,
		}

		_, err := GetDCATExport(ctx, params)
		var apiErr *apierrors.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Contains(t, apiErr.UserMessage, nodeID)
	})
}
