package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/datakeep/communities-service/internal/api/authn"
	"github.com/datakeep/communities-service/internal/shared/util"
)

// DatakeepService is embedded by the HTTP clients that call other Datakeep
// services. It signs outgoing requests with a short-lived service token
// carrying the acting user.
type DatakeepService struct {
	jwtSecretKey string
}

func (d *DatakeepService) InvokeDatakeep(ctx context.Context, logger *slog.Logger, identity authn.UserClaim, requestParams requestParameters) (*http.Response, error) {
	req, err := newDatakeepRequest(ctx, requestParams)
	if err != nil {
		return nil, fmt.Errorf("error creating %s request: %w", requestParams, err)
	}
	if err := d.addAuth(identity, req); err != nil {
		return nil, err
	}
	return util.Invoke(req, logger)
}

func (d *DatakeepService) addAuth(identity authn.UserClaim, request *http.Request) error {
	serviceClaim := authn.GenerateServiceClaim(identity, 5*time.Minute)
	token, err := serviceClaim.AsToken(d.jwtSecretKey)
	if err != nil {
		return fmt.Errorf("error creating JWT from service claim: %w", err)
	}
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token.Value))
	return nil
}

type requestParameters struct {
	method string
	url    string
	body   any
}

func (p requestParameters) String() string {
	return fmt.Sprintf("%s %s", p.method, p.url)
}

func newDatakeepRequest(ctx context.Context, requestParams requestParameters) (*http.Request, error) {
	body, err := makeJSONBody(requestParams.body)
	if err != nil {
		return nil, fmt.Errorf("error for %s request: %w", requestParams, err)
	}
	request, err := http.NewRequestWithContext(ctx, requestParams.method, requestParams.url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating %s request: %w", requestParams, err)
	}
	request.Header.Add("accept", util.ApplicationJSON)
	request.Header.Add("Content-Type", util.ApplicationJSON)
	return request, nil
}

func makeJSONBody(structBody any) (io.Reader, error) {
	if structBody == nil {
		return nil, nil
	}
	var buffer bytes.Buffer
	if err := json.NewEncoder(&buffer).Encode(structBody); err != nil {
		return nil, fmt.Errorf("error encoding body: %w", err)
	}
	return &buffer, nil
}
