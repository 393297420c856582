package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/go-resty/resty/v2"
)

var errorStatusMap = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

// ResponseError is a non-2xx answer. It unwraps to the sentinel matching the
// status, so callers use errors.Is and print Message to the user.
type ResponseError struct {
	Status  int
	Message string
	err     error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.err, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.err
}

// NewResponseError builds the error for a non-2xx status.
func NewResponseError(status int, message string) *ResponseError {
	sentinel, ok := errorStatusMap[status]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &ResponseError{Status: status, Message: message, err: sentinel}
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(status, messageFromBody(resp))
}

// messageFromBody prefers the JSON message the server writes on every error
// and falls back to the raw body or the status text.
func messageFromBody(resp *resty.Response) string {
	var body models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		return body.Message
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
