package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/dto"
	"github.com/datakeep/communities-service/internal/api/service"
	"github.com/datakeep/communities-service/internal/api/store/records"
	"github.com/datakeep/communities-service/internal/api/validate"
)

var AddRecordCommunitiesRouteKey = fmt.Sprintf("POST /records/{%s}/communities", RecordIDPathParamKey)

// AddRecordCommunities submits one inclusion request per community in the
// request body. Per-community failures come back in the response's errors
// list; the call itself only fails on validation, resolution, or permission
// problems.
func AddRecordCommunities(ctx context.Context, params Params) (dto.AddCommunitiesResponse, error) {
	recordID, apiError := recordIDPathParam(params)
	if apiError != nil {
		return dto.AddCommunitiesResponse{}, apiError
	}
	userClaim := params.Claims.UserClaim
	params.Container.AddLoggingContext(
		slog.String(RecordIDPathParamKey, recordID),
		slog.String("userNodeId", userClaim.NodeID))

	var requestDTO dto.CommunityOperationsRequest
	if apiError := unmarshallRequestBody(params.Request.Body, &requestDTO); apiError != nil {
		return dto.AddCommunitiesResponse{}, apiError
	}
	if apiError := validate.CommunityOperations(requestDTO.Communities, params.Config.Datakeep.MaxCommunityAdditions); apiError != nil {
		return dto.AddCommunitiesResponse{}, apiError
	}

	recordCommunities, err := params.Container.RecordCommunities(ctx)
	if err != nil {
		return dto.AddCommunitiesResponse{}, apierrors.NewInternalServerError("error building record communities service", err)
	}

	response, err := recordCommunities.Add(ctx, *userClaim, recordID, requestDTO.Communities)
	if err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			return dto.AddCommunitiesResponse{}, apierrors.NewRecordNotFoundError(recordID)
		}
		if errors.Is(err, service.ErrPermissionDenied) {
			return dto.AddCommunitiesResponse{}, apierrors.NewForbiddenError(
				fmt.Sprintf("user %s cannot add communities to record %s", userClaim.NodeID, recordID))
		}
		return dto.AddCommunitiesResponse{}, apierrors.NewInternalServerError(
			fmt.Sprintf("error adding communities to record %s", recordID), err)
	}
	return response, nil
}

func NewAddRecordCommunitiesRouteHandler() Handler[dto.AddCommunitiesResponse] {
	return Handler[dto.AddCommunitiesResponse]{
		HandleFunc:        AddRecordCommunities,
		SuccessStatusCode: http.StatusOK,
		Headers:           DefaultResponseHeaders(),
	}
}
