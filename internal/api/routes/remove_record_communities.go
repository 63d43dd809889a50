package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/dto"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/api/validate"
)

var RemoveRecordCommunitiesRouteKey = fmt.Sprintf("DELETE /records/{%s}/communities", RecordIDPathParamKey)

// RemoveRecordCommunities removes the record from each community in the
// request body. Memberships the caller cannot remove, or that do not exist,
// are reported per community in the response's errors list.
func RemoveRecordCommunities(ctx context.Context, params Params) (dto.RemoveCommunitiesResponse, error) {
	recordID, apiError := recordIDPathParam(params)
	if apiError != nil {
		return dto.RemoveCommunitiesResponse{}, apiError
	}
	userClaim := params.Claims.UserClaim
	params.Container.AddLoggingContext(
		slog.String(RecordIDPathParamKey, recordID),
		slog.String("userNodeId", userClaim.NodeID))

	var requestDTO dto.CommunityOperationsRequest
	if apiError := unmarshallRequestBody(params.Request.Body, &requestDTO); apiError != nil {
		return dto.RemoveCommunitiesResponse{}, apiError
	}
	if apiError := validate.CommunityOperations(requestDTO.Communities, params.Config.Datakeep.MaxCommunityRemovals); apiError != nil {
		return dto.RemoveCommunitiesResponse{}, apiError
	}

	recordCommunities, err := params.Container.RecordCommunities(ctx)
	if err != nil {
		return dto.RemoveCommunitiesResponse{}, apierrors.NewInternalServerError("error building record communities service", err)
	}

	response, err := recordCommunities.Remove(ctx, *userClaim, recordID, requestDTO.Communities)
	if err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			return dto.RemoveCommunitiesResponse{}, apierrors.NewRecordNotFoundError(recordID)
		}
		return dto.RemoveCommunitiesResponse{}, apierrors.NewInternalServerError(
			fmt.Sprintf("error removing communities from record %s", recordID), err)
	}
	return response, nil
}

func NewRemoveRecordCommunitiesRouteHandler() Handler[dto.RemoveCommunitiesResponse] {
	return Handler[dto.RemoveCommunitiesResponse]{
		HandleFunc:        RemoveRecordCommunities,
		SuccessStatusCode: http.StatusOK,
		Headers:           DefaultResponseHeaders(),
	}
}
