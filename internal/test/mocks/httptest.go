package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/search"
	"github.com/datakeep/communities-service/internal/api/service"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/stretchr/testify/require"
)

// DatakeepMux holds mocked handlers for the other Datakeep services. One
// httptest.Server instance can stand in for the communities, requests, and
// search-index services at the same time.
type DatakeepMux struct {
	*http.ServeMux
	jwtSecretKey string
}

func NewDatakeepMux(jwtSecretKey string) *DatakeepMux {
	return &DatakeepMux{
		http.NewServeMux(),
		jwtSecretKey,
	}
}

func (m *DatakeepMux) WithGetCommunityFunc(ctx context.Context, t require.TestingT, f GetCommunityFunc) *DatakeepMux {
	m.HandleFunc("GET /communities/{communityId}", func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		identity := m.RequireServiceToken(t, request)
		community, err := f(ctx, identity, request.PathValue("communityId"))
		respond(t, writer, community, err)
	})
	return m
}

func (m *DatakeepMux) WithSearchCommunitiesFunc(ctx context.Context, t require.TestingT, f SearchCommunitiesFunc) *DatakeepMux {
	m.HandleFunc("POST /communities/search", func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		identity := m.RequireServiceToken(t, request)
		var searchRequest struct {
			Filter search.Filter `json:"filter"`
			Params search.Params `json:"params"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&searchRequest))
		response, err := f(ctx, identity, searchRequest.Filter, searchRequest.Params)
		respond(t, writer, response, err)
	})
	return m
}

func (m *DatakeepMux) WithFindOpenInclusionRequestFunc(ctx context.Context, t require.TestingT, f FindOpenInclusionRequestFunc) *DatakeepMux {
	m.HandleFunc("POST /requests/search", func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		identity := m.RequireServiceToken(t, request)
		var searchRequest struct {
			Filter search.Filter `json:"filter"`
			Params search.Params `json:"params"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&searchRequest))
		require.NotNil(t, searchRequest.Filter.Bool, "expected a bool filter in open request search")
		terms := map[string]any{}
		for _, mustFilter := range searchRequest.Filter.Bool.Must {
			for field, value := range mustFilter.Term {
				terms[field] = value
			}
		}
		communityID, _ := terms["receiver.community"].(string)
		recordID, _ := terms["topic.record"].(string)
		requestID, err := f(ctx, identity, communityID, recordID)
		if err != nil {
			respond(t, writer, nil, err)
			return
		}
		response := struct {
			TotalCount int   `json:"totalCount"`
			Hits       []any `json:"hits"`
		}{}
		if requestID != nil {
			response.TotalCount = 1
			response.Hits = []any{map[string]any{"id": *requestID, "is_open": true}}
		}
		respond(t, writer, response, nil)
	})
	return m
}

func (m *DatakeepMux) WithCreateInclusionRequestFunc(ctx context.Context, t require.TestingT, f CreateInclusionRequestFunc) *DatakeepMux {
	m.HandleFunc("POST /requests", func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		identity := m.RequireServiceToken(t, request)
		var createRequest struct {
			Type     string            `json:"type"`
			Receiver map[string]string `json:"receiver"`
			Topic    map[string]string `json:"topic"`
			Payload  *struct {
				Content string `json:"content"`
				Format  string `json:"format"`
			} `json:"payload"`
		}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&createRequest))
		var comment string
		if createRequest.Payload != nil {
			require.Equal(t, "html", createRequest.Payload.Format)
			comment = createRequest.Payload.Content
		}
		created, err := f(ctx, identity, createRequest.Receiver["community"], createRequest.Topic["record"], comment)
		respond(t, writer, created, err)
	})
	return m
}

func (m *DatakeepMux) WithSubmitRequestFunc(ctx context.Context, t require.TestingT, f SubmitRequestFunc) *DatakeepMux {
	return m.withRequestActionFunc(ctx, t, "submit", f)
}

func (m *DatakeepMux) WithIncludeRequestFunc(ctx context.Context, t require.TestingT, f IncludeRequestFunc) *DatakeepMux {
	return m.withRequestActionFunc(ctx, t, "accept", f)
}

func (m *DatakeepMux) withRequestActionFunc(ctx context.Context, t require.TestingT, action string,
	f func(ctx context.Context, identity authn.UserClaim, requestID string) (service.Request, error)) *DatakeepMux {
	m.HandleFunc(fmt.Sprintf("POST /requests/{requestId}/actions/%s", action), func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		identity := m.RequireServiceToken(t, request)
		updated, err := f(ctx, identity, request.PathValue("requestId"))
		respond(t, writer, updated, err)
	})
	return m
}

func (m *DatakeepMux) WithIndexRecordFunc(ctx context.Context, t require.TestingT, f IndexRecordFunc) *DatakeepMux {
	m.HandleFunc("POST /index/records/{recordId}", func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		m.RequireServiceToken(t, request)
		refresh, err := strconv.ParseBool(request.URL.Query().Get("refresh"))
		require.NoError(t, err)
		respond(t, writer, struct{}{}, f(ctx, request.PathValue("recordId"), refresh))
	})
	return m
}

func (m *DatakeepMux) WithRefreshIndexFunc(ctx context.Context, t require.TestingT, f RefreshIndexFunc) *DatakeepMux {
	m.HandleFunc("POST /index/records/refresh", func(writer http.ResponseWriter, request *http.Request) {
		test.Helper(t)
		m.RequireServiceToken(t, request)
		respond(t, writer, struct{}{}, f(ctx))
	})
	return m
}

// RequireServiceToken verifies the Bearer token on the request and returns the
// acting user it carries.
func (m *DatakeepMux) RequireServiceToken(t require.TestingT, request *http.Request) authn.UserClaim {
	test.Helper(t)
	authHeader := request.Header.Get("Authorization")
	require.NotEmpty(t, authHeader)
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	require.False(t, tokenString == authHeader, "auth header value %s does not start with 'Bearer '", authHeader)

	serviceClaim, err := authn.ParseServiceClaim(tokenString, m.jwtSecretKey)
	require.NoError(t, err)
	require.Equal(t, authn.LabelServiceClaim, serviceClaim.Type)
	return authn.UserClaim{
		ID:           serviceClaim.UserID,
		NodeID:       serviceClaim.UserNodeID,
		IsSuperAdmin: serviceClaim.IsSuperAdmin,
	}
}

func respond(t require.TestingT, writer http.ResponseWriter, mockResponse any, mockErr error) {
	test.Helper(t)
	var httpResponse any
	switch e := mockErr.(type) {
	case nil:
		httpResponse = mockResponse
	case *apierrors.Error:
		writer.WriteHeader(e.StatusCode)
		httpResponse = e
	default:
		writer.WriteHeader(http.StatusInternalServerError)
		httpResponse = map[string]string{"error": e.Error()}
	}
	resBytes, err := json.Marshal(httpResponse)
	require.NoError(t, err)
	_, err = writer.Write(resBytes)
	require.NoError(t, err)
}
