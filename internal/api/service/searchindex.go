package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/shared/util"
)

// SearchIndex is the client for the Datakeep search-index service. Only used
// through unit-of-work operations after membership mutations.
type SearchIndex interface {
	// IndexRecord re-indexes the given record; when refresh is true the index
	// is refreshed immediately so the change is visible to searches.
	IndexRecord(ctx context.Context, recordID string, refresh bool) error
	// Refresh makes all pending index changes visible.
	Refresh(ctx context.Context) error
}

type HTTPSearchIndex struct {
	DatakeepService
	url    string
	logger *slog.Logger
}

func NewHTTPSearchIndex(searchIndexURL, jwtSecretKey string, logger *slog.Logger) *HTTPSearchIndex {
	return &HTTPSearchIndex{
		DatakeepService: DatakeepService{jwtSecretKey: jwtSecretKey},
		url:             searchIndexURL,
		logger:          logger,
	}
}

// indexing runs under the service's own identity; the acting user is not
// relevant to the index.
var indexerIdentity = authn.UserClaim{NodeID: "N:service:communities-service"}

func (s *HTTPSearchIndex) IndexRecord(ctx context.Context, recordID string, refresh bool) error {
	requestParams := requestParameters{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/index/records/%s?refresh=%t", s.url, url.PathEscape(recordID), refresh),
	}
	response, err := s.InvokeDatakeep(ctx, s.logger, indexerIdentity, requestParams)
	if err != nil {
		return err
	}
	util.CloseAndWarn(response, s.logger)
	return nil
}

func (s *HTTPSearchIndex) Refresh(ctx context.Context) error {
	requestParams := requestParameters{
		method: http.MethodPost,
		url:    fmt.Sprintf("%s/index/records/refresh", s.url),
	}
	response, err := s.InvokeDatakeep(ctx, s.logger, indexerIdentity, requestParams)
	if err != nil {
		return err
	}
	util.CloseAndWarn(response, s.logger)
	return nil
}
