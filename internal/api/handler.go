package api

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/config"
	"github.com/datakeep/communities-service/internal/api/container"
	"github.com/datakeep/communities-service/internal/api/routes"
	"github.com/datakeep/communities-service/internal/shared/logging"
)

type LambdaHandler func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

func Handler() LambdaHandler {
	// initializes the dependency container once per Lambda invocation
	depContainer, err := container.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}

	return CommunitiesServiceAPIHandler(depContainer, depContainer.Config)
}

func CommunitiesServiceAPIHandler(
	container container.DependencyContainer,
	config config.Config,
) LambdaHandler {
	return func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		routeKey := request.RouteKey
		logger := logging.Default.With(slog.String("routeKey", routeKey))
		container.SetLogger(logger)

		claims := authn.ParseClaims(request.RequestContext.Authorizer.Lambda)

		if claims == nil || claims.UserClaim == nil {
			err := apierrors.NewUnauthorizedError("no user claim in request")
			err.LogError(logger)
			return routes.ErrorGatewayResponse(err), nil
		}

		routeParams := routes.Params{
			Request:   request,
			Container: container,
			Config:    config,
			Claims:    claims,
		}
		switch routeKey {
		case routes.AddRecordCommunitiesRouteKey:
			return routes.Handle(ctx, routeParams, routes.NewAddRecordCommunitiesRouteHandler())
		case routes.RemoveRecordCommunitiesRouteKey:
			return routes.Handle(ctx, routeParams, routes.NewRemoveRecordCommunitiesRouteHandler())
		case routes.GetRecordCommunitiesRouteKey:
			return routes.Handle(ctx, routeParams, routes.NewGetRecordCommunitiesRouteHandler())
		case routes.GetDCATExportRouteKey:
			return routes.Handle(ctx, routeParams, routes.NewGetDCATExportRouteHandler())
		default:
			routeNotFound := apierrors.NewError(fmt.Sprintf("route [%s] not found", routeKey), nil, http.StatusNotFound)
			routeNotFound.LogError(logger)
			return routes.ErrorGatewayResponse(routeNotFound), nil
		}
	}
}
