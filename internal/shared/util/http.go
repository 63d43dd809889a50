package util

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const ApplicationJSON = "application/json"

// HTTPError is returned by Invoke for non-2xx responses so callers can map
// specific status codes to domain errors.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Invoke sends the given request and returns the response if its status is
// 2xx. Non-2xx responses are read and turned into an *HTTPError.
func Invoke(request *http.Request, logger *slog.Logger) (*http.Response, error) {
	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error invoking %s %s: %w", request.Method, request.URL, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		defer CloseAndWarn(response, logger)
		body, readErr := io.ReadAll(response.Body)
		if readErr != nil {
			body = []byte(fmt.Sprintf("<unreadable body: %v>", readErr))
		}
		return nil, &HTTPError{
			Method:     request.Method,
			URL:        request.URL.String(),
			StatusCode: response.StatusCode,
			Body:       string(body),
		}
	}
	return response, nil
}

// UnmarshallResponse decodes the response body into responseDTO and closes the
// body.
func UnmarshallResponse(response *http.Response, responseDTO any) error {
	defer func() {
		_ = response.Body.Close()
	}()
	if err := json.NewDecoder(response.Body).Decode(responseDTO); err != nil {
		return fmt.Errorf("error decoding response body: %w", err)
	}
	return nil
}

func CloseAndWarn(response *http.Response, logger *slog.Logger) {
	if err := response.Body.Close(); err != nil {
		logger.Warn("error closing response body",
			slog.String("method", response.Request.Method),
			slog.String("url", response.Request.URL.String()),
			slog.Any("error", err))
	}
}
