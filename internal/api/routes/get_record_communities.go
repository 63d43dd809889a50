package routes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/search"
	"github.com/datakeep/communities-service/internal/api/service"
	"github.com/datakeep/communities-service/internal/api/store/records"
)

var GetRecordCommunitiesRouteKey = fmt.Sprintf("GET /records/{%s}/communities", RecordIDPathParamKey)

const (
	limitQueryParamKey  = "limit"
	offsetQueryParamKey = "offset"
	queryQueryParamKey  = "q"

	defaultLimit  = 10
	defaultOffset = 0
	maxLimit      = 100
)

// GetRecordCommunities searches the communities the record belongs to,
// delegating the actual search to the communities service constrained to the
// record's current membership IDs.
func GetRecordCommunities(ctx context.Context, params Params) (service.CommunitySearchResponse, error) {
	recordID, apiError := recordIDPathParam(params)
	if apiError != nil {
		return service.CommunitySearchResponse{}, apiError
	}
	userClaim := params.Claims.UserClaim
	params.Container.AddLoggingContext(
		slog.String(RecordIDPathParamKey, recordID),
		slog.String("userNodeId", userClaim.NodeID))

	queryParams := params.Request.QueryStringParameters
	limit, apiError := getIntQueryParam(queryParams, limitQueryParamKey, 0, defaultLimit)
	if apiError != nil {
		return service.CommunitySearchResponse{}, apiError
	}
	if limit > maxLimit {
		return service.CommunitySearchResponse{}, apierrors.NewBadRequestError(
			fmt.Sprintf("%s cannot be larger than %d; got %d", limitQueryParamKey, maxLimit, limit))
	}
	offset, apiError := getIntQueryParam(queryParams, offsetQueryParamKey, 0, defaultOffset)
	if apiError != nil {
		return service.CommunitySearchResponse{}, apiError
	}
	searchParams := search.Params{
		Query:  queryParams[queryQueryParamKey],
		Limit:  limit,
		Offset: offset,
	}

	recordCommunities, err := params.Container.RecordCommunities(ctx)
	if err != nil {
		return service.CommunitySearchResponse{}, apierrors.NewInternalServerError("error building record communities service", err)
	}

	response, err := recordCommunities.Search(ctx, *userClaim, recordID, searchParams, nil)
	if err != nil {
		if errors.Is(err, records.ErrRecordNotFound) {
			return service.CommunitySearchResponse{}, apierrors.NewRecordNotFoundError(recordID)
		}
		if errors.Is(err, service.ErrPermissionDenied) {
			return service.CommunitySearchResponse{}, apierrors.NewForbiddenError(
				fmt.Sprintf("user %s cannot read record %s", userClaim.NodeID, recordID))
		}
		return service.CommunitySearchResponse{}, apierrors.NewInternalServerError(
			fmt.Sprintf("error searching communities of record %s", recordID), err)
	}
	return response, nil
}

func NewGetRecordCommunitiesRouteHandler() Handler[service.CommunitySearchResponse] {
	return Handler[service.CommunitySearchResponse]{
		HandleFunc:        GetRecordCommunities,
		SuccessStatusCode: http.StatusOK,
		Headers:           DefaultResponseHeaders(),
	}
}
