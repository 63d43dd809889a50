package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/datakeep/communities-service/internal/api/apierrors"
	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/api/config"
	"github.com/datakeep/communities-service/internal/api/container"
	"github.com/datakeep/communities-service/internal/shared/util"
)

const RecordIDPathParamKey = "recordId"

func DefaultResponseHeaders() map[string]string {
	return map[string]string{"content-type": util.ApplicationJSON}
}

type Params struct {
	Request   events.APIGatewayV2HTTPRequest
	Container container.DependencyContainer
	Config    config.Config
	Claims    *authn.Claims
}

type Func[T any] func(ctx context.Context, params Params) (T, error)

type Handler[T any] struct {
	HandleFunc        Func[T]
	SuccessStatusCode int
	Headers           map[string]string
}

func Handle[T any](ctx context.Context, params Params, handler Handler[T]) (events.APIGatewayV2HTTPResponse, error) {
	response, err := handler.HandleFunc(ctx, params)
	if err != nil {
		apiError := asAPIError(err)
		// the container logger carries any context the route added
		apiError.LogError(params.Container.Logger())
		return ErrorGatewayResponse(apiError), nil
	}
	body, marshalErr := json.Marshal(response)
	if marshalErr != nil {
		apiError := apierrors.NewInternalServerError(fmt.Sprintf("error marshalling response body to %T", response), marshalErr)
		apiError.LogError(params.Container.Logger())
		return ErrorGatewayResponse(apiError), nil
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: handler.SuccessStatusCode,
		Headers:    handler.Headers,
		Body:       string(body),
	}, nil
}

func ErrorGatewayResponse(err *apierrors.Error) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: err.StatusCode,
		Headers:    DefaultResponseHeaders(),
		Body:       fmt.Sprintf(`{"message": %q, "error_id": %q}`, err.UserMessage, err.ID),
	}
}

func asAPIError(err error) *apierrors.Error {
	var apiError *apierrors.Error
	if errors.As(err, &apiError) {
		return apiError
	}
	return apierrors.NewInternalServerError("unexpected error", err)
}

// recordIDPathParam returns the recordId path parameter, or a Bad Request
// error if it is missing.
func recordIDPathParam(params Params) (string, *apierrors.Error) {
	recordID := params.Request.PathParameters[RecordIDPathParamKey]
	if len(recordID) == 0 {
		return "", apierrors.NewBadRequestError(fmt.Sprintf("missing %q path parameter", RecordIDPathParamKey))
	}
	return recordID, nil
}

func getIntQueryParam(queryParams map[string]string, key string, requiredMin int, defaultValue int) (int, *apierrors.Error) {
	if strVal, present := queryParams[key]; present {
		value, err := strconv.Atoi(strVal)
		if err != nil {
			return 0, apierrors.NewBadRequestErrorWithCause(fmt.Sprintf("value of [%s] must be an integer", key), err)
		}
		if value < requiredMin {
			return 0, apierrors.NewBadRequestError(fmt.Sprintf("value of [%s] must be at least %d; got %d", key, requiredMin, value))
		}
		return value, nil
	}
	return defaultValue, nil
}

func unmarshallRequestBody[T any](body string, requestDTO *T) *apierrors.Error {
	if err := json.Unmarshal([]byte(body), requestDTO); err != nil {
		return apierrors.NewRequestUnmarshallError(*requestDTO, err)
	}
	return nil
}
