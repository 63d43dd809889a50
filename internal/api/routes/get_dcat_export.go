package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/datakeep/communities-service/internal/api/access"
	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/serializers/dcat"
	"github.com/datakeep/communities-service/internal/api/store/records"
)

var GetDCATExportRouteKey = fmt.Sprintf("GET /records/{%s}/dcat", RecordIDPathParamKey)

// GetDCATExport serializes the record to its DCAT export document, including
// the computed file listing when the record has files.
func GetDCATExport(ctx context.Context, params Params) (dcat.Document, error) {
	recordID, apiError := recordIDPathParam(params)
	if apiError != nil {
		return dcat.Document{}, apiError
	}
	userClaim := params.Claims.UserClaim
	params.Container.AddLoggingContext(
		slog.String(RecordIDPathParamKey, recordID),
		slog.String("userNodeId", userClaim.NodeID))

	record, err := params.Container.RecordsStore().GetRecord(ctx, userClaim.ID, recordID)
	if err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			return dcat.Document{}, apierrors.NewRecordNotFoundError(recordID)
		}
		return dcat.Document{}, apierrors.NewInternalServerError(
			fmt.Sprintf("error getting record %s", recordID), err)
	}
	if !userClaim.IsSuperAdmin && !record.CallerRole.Implies(access.MinimumRole(access.ActionRead)) {
		return dcat.Document{}, apierrors.NewForbiddenError(
			fmt.Sprintf("user %s cannot read record %s", userClaim.NodeID, recordID))
	}

	document, err := params.Container.DCATSchema().Serialize(record)
	if err != nil {
		return dcat.Document{}, apierrors.NewInternalServerError(
			fmt.Sprintf("error serializing record %s", recordID), err)
	}
	return document, nil
}

func NewGetDCATExportRouteHandler() Handler[dcat.Document] {
	return Handler[dcat.Document]{
		HandleFunc:        GetDCATExport,
		SuccessStatusCode: http.StatusOK,
		Headers:           DefaultResponseHeaders(),
	}
}
