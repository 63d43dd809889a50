package apitest

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/test"
	"github.com/stretchr/testify/require"
)

type APIGatewayRequestBuilder struct {
	r *events.APIGatewayV2HTTPRequest
}

func NewAPIGatewayRequestBuilder(routeKey string) *APIGatewayRequestBuilder {
	return &APIGatewayRequestBuilder{r: &events.APIGatewayV2HTTPRequest{
		RouteKey: routeKey,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			Authorizer: &events.APIGatewayV2HTTPRequestContextAuthorizerDescription{
				Lambda: make(map[string]interface{}),
			},
		},
	}}
}

func (b *APIGatewayRequestBuilder) WithClaims(claims authn.Claims) *APIGatewayRequestBuilder {
	b.r.RequestContext.Authorizer.Lambda = authn.ClaimsToMap(claims)
	return b
}

func (b *APIGatewayRequestBuilder) WithDefaultClaims(seedUser test.SeedUser) *APIGatewayRequestBuilder {
	return b.WithClaims(DefaultClaims(seedUser))
}

func (b *APIGatewayRequestBuilder) WithBody(t require.TestingT, bodyStruct any) *APIGatewayRequestBuilder {
	bodyBytes, err := json.Marshal(bodyStruct)
	require.NoError(t, err)
	b.r.Body = string(bodyBytes)
	return b
}

func (b *APIGatewayRequestBuilder) WithPathParam(key string, value string) *APIGatewayRequestBuilder {
	if b.r.PathParameters == nil {
		b.r.PathParameters = make(map[string]string)
	}
	b.r.PathParameters[key] = value
	return b
}

func (b *APIGatewayRequestBuilder) WithQueryParam(key string, value string) *APIGatewayRequestBuilder {
	if b.r.QueryStringParameters == nil {
		b.r.QueryStringParameters = make(map[string]string)
	}
	b.r.QueryStringParameters[key] = value
	return b
}

func (b *APIGatewayRequestBuilder) WithIntQueryParam(key string, value int) *APIGatewayRequestBuilder {
	return b.WithQueryParam(key, fmt.Sprintf("%d", value))
}

func (b *APIGatewayRequestBuilder) Build() events.APIGatewayV2HTTPRequest {
	return *b.r
}

func DefaultClaims(seedUser test.SeedUser) authn.Claims {
	return authn.Claims{
		UserClaim: &authn.UserClaim{
			ID:           seedUser.ID,
			NodeID:       seedUser.NodeID,
			IsSuperAdmin: seedUser.IsSuperAdmin,
		},
	}
}
