package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/search"
	"github.com/datakeep/communities-service/internal/shared/util"
)

// Communities is the client for the Datakeep communities catalog service.
type Communities interface {
	// GetCommunity resolves a community by id. Returns ErrCommunityNotFound
	// if the catalog does not know the id.
	GetCommunity(ctx context.Context, identity authn.UserClaim, communityID string) (Community, error)
	// Search runs a community search restricted by the given filter.
	Search(ctx context.Context, identity authn.UserClaim, filter search.Filter, params search.Params) (CommunitySearchResponse, error)
}

type Community struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Visibility string `json:"visibility"`
}

func (c Community) IsRestricted() bool {
	return c.Visibility == "restricted"
}

type CommunitySearchResponse struct {
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
	TotalCount int         `json:"totalCount"`
	Hits       []Community `json:"hits"`
}

type communitySearchRequest struct {
	Filter search.Filter `json:"filter"`
	Params search.Params `json:"params"`
}

type HTTPCommunities struct {
	DatakeepService
	url    string
	logger *slog.Logger
}

func NewHTTPCommunities(communitiesServiceURL, jwtSecretKey string, logger *slog.Logger) *HTTPCommunities {
	return &HTTPCommunities{
		DatakeepService: DatakeepService{jwtSecretKey: jwtSecretKey},
		url:             communitiesServiceURL,
		logger:          logger,
	}
}

func (c *HTTPCommunities) GetCommunity(ctx context.Context, identity authn.UserClaim, communityID string) (Community, error) {
	requestParams := requestParameters{
		method: http.MethodGet,
		url:    fmt.Sprintf("%s/communities/%s", c.url, url.PathEscape(communityID)),
	}
	response, err := c.InvokeDatakeep(ctx, c.logger, identity, requestParams)
	if err != nil {
		var httpError *util.HTTPError
		if errors.As(err, &httpError) && httpError.StatusCode == http.StatusNotFound {
			return Community{}, ErrCommunityNotFound
		}
		return Community{}, err
	}

	var community Community
	if err := util.UnmarshallResponse(response, &community); err != nil {
		return Community{}, fmt.Errorf("error unmarshalling response to %s: %w", requestParams, err)
	}
	return community, nil
}

func (c *HTTPCommunities) Search(ctx context.Context, identity authn.UserClaim, filter search.Filter, params search.Params) (CommunitySearchResponse, error) {
	requestParams := requestParameters{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/communities/search", c.url),
		body: communitySearchRequest{
			Filter: filter,
			Params: params,
		},
	}
	response, err := c.InvokeDatakeep(ctx, c.logger, identity, requestParams)
	if err != nil {
		return CommunitySearchResponse{}, err
	}

	var responseDTO CommunitySearchResponse
	if err := util.UnmarshallResponse(response, &responseDTO); err != nil {
		return CommunitySearchResponse{}, fmt.Errorf("error unmarshalling response to %s: %w", requestParams, err)
	}
	return responseDTO, nil
}
