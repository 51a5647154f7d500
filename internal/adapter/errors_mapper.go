package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := NewResponseError(resp.StatusCode(), extractDetail(resp.Body()))
	if resp.Request != nil {
		respErr.token = resp.Request.Token
	}
	return respErr
}

// NewResponseError builds the error for a non-2xx status. The sentinel it
// unwraps to is chosen from statusCode.
func NewResponseError(statusCode int, detail string) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Detail: detail}

	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusConflict:
		respErr.kind = ErrConflict
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	case http.StatusServiceUnavailable:
		respErr.kind = ErrServiceUnavailable
	default:
		respErr.kind = ErrUnexpectedStatus
	}

	return respErr
}

// extractDetail reads {"detail": "..."} bodies. Anything else, including
// structured validation details and proxy pages, yields "".
func extractDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
