package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/search"
	"github.com/datakeep/communities-service/internal/shared/util"
)

// InclusionRequestType is the workflow request type for adding a record to a
// community.
const InclusionRequestType = "community-inclusion"

// Requests is the client for the Datakeep requests/workflow service, which
// owns the request state machine (open -> included/rejected).
type Requests interface {
	// FindOpenInclusionRequest returns the id of an open inclusion request
	// for the given community/record pair, or nil if there is none.
	FindOpenInclusionRequest(ctx context.Context, identity authn.UserClaim, communityID, recordID string) (*string, error)
	// CreateInclusionRequest creates a new inclusion request with the
	// community as receiver and the record as topic.
	CreateInclusionRequest(ctx context.Context, identity authn.UserClaim, communityID, recordID, comment string) (Request, error)
	// Submit transitions the request into review.
	Submit(ctx context.Context, identity authn.UserClaim, requestID string) (Request, error)
	// Include accepts the request, adding the record to the community.
	Include(ctx context.Context, identity authn.UserClaim, requestID string) (Request, error)
}

type Request struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Status string `json:"status"`
	IsOpen bool   `json:"is_open"`
}

type requestPayload struct {
	Content string `json:"content"`
	Format  string `json:"format"`
}

type createRequestBody struct {
	Type     string            `json:"type"`
	Receiver map[string]string `json:"receiver"`
	Topic    map[string]string `json:"topic"`
	Payload  *requestPayload   `json:"payload,omitempty"`
}

type requestSearchRequest struct {
	Filter search.Filter `json:"filter"`
	Params search.Params `json:"params"`
}

type requestSearchResponse struct {
	TotalCount int       `json:"totalCount"`
	Hits       []Request `json:"hits"`
}

type HTTPRequests struct {
	DatakeepService
	url    string
	logger *slog.Logger
}

func NewHTTPRequests(requestsServiceURL, jwtSecretKey string, logger *slog.Logger) *HTTPRequests {
	return &HTTPRequests{
		DatakeepService: DatakeepService{jwtSecretKey: jwtSecretKey},
		url:             requestsServiceURL,
		logger:          logger,
	}
}

func (r *HTTPRequests) FindOpenInclusionRequest(ctx context.Context, identity authn.UserClaim, communityID, recordID string) (*string, error) {
	filter := search.Must(
		search.Term("receiver.community", communityID),
		search.Term("topic.record", recordID),
		search.Term("type", InclusionRequestType),
		search.Term("is_open", true),
	)
	requestParams := requestParameters{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/requests/search", r.url),
		body:   requestSearchRequest{Filter: filter, Params: search.Params{Limit: 1}},
	}
	response, err := r.InvokeDatakeep(ctx, r.logger, identity, requestParams)
	if err != nil {
		return nil, err
	}

	var responseDTO requestSearchResponse
	if err := util.UnmarshallResponse(response, &responseDTO); err != nil {
		return nil, fmt.Errorf("error unmarshalling response to %s: %w", requestParams, err)
	}
	if responseDTO.TotalCount == 0 || len(responseDTO.Hits) == 0 {
		return nil, nil
	}
	return &responseDTO.Hits[0].ID, nil
}

func (r *HTTPRequests) CreateInclusionRequest(ctx context.Context, identity authn.UserClaim, communityID, recordID, comment string) (Request, error) {
	body := createRequestBody{
		Type:     InclusionRequestType,
		Receiver: map[string]string{"community": communityID},
		Topic:    map[string]string{"record": recordID},
	}
	if len(comment) > 0 {
		body.Payload = &requestPayload{Content: comment, Format: "html"}
	}
	requestParams := requestParameters{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/requests", r.url),
		body:   body,
	}
	return r.invokeForRequest(ctx, identity, requestParams)
}

func (r *HTTPRequests) Submit(ctx context.Context, identity authn.UserClaim, requestID string) (Request, error) {
	return r.action(ctx, identity, requestID, "submit")
}

func (r *HTTPRequests) Include(ctx context.Context, identity authn.UserClaim, requestID string) (Request, error) {
	return r.action(ctx, identity, requestID, "accept")
}

func (r *HTTPRequests) action(ctx context.Context, identity authn.UserClaim, requestID, action string) (Request, error) {
	requestParams := requestParameters{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/requests/%s/actions/%s", r.url, url.PathEscape(requestID), action),
	}
	return r.invokeForRequest(ctx, identity, requestParams)
}

func (r *HTTPRequests) invokeForRequest(ctx context.Context, identity authn.UserClaim, requestParams requestParameters) (Request, error) {
	response, err := r.InvokeDatakeep(ctx, r.logger, identity, requestParams)
	if err != nil {
		return Request{}, err
	}
	var responseDTO Request
	if err := util.UnmarshallResponse(response, &responseDTO); err != nil {
		return Request{}, fmt.Errorf("error unmarshalling response to %s: %w", requestParams, err)
	}
	return responseDTO, nil
}
