// Package httputil reads JSON bodies from the release manifest host.
package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// maxBodySize bounds what DecodeJSONResponse reads from a remote server.
const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// StatusError is returned by DecodeJSONResponse for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// DecodeJSONResponse decodes a 2xx JSON body into v. The message of an
// ErrorResponse body is surfaced in the returned StatusError.
func DecodeJSONResponse(resp *http.Response, v any) error {
	body := io.LimitReader(resp.Body, maxBodySize)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{Code: resp.StatusCode}
		var errResp ErrorResponse
		if sonic.ConfigDefault.NewDecoder(body).Decode(&errResp) == nil {
			statusErr.Message = errResp.Message
		}
		return statusErr
	}
	if err := sonic.ConfigDefault.NewDecoder(body).Decode(v); err != nil {
		return errors.New("decoding response body error: " + err.Error())
	}
	return nil
}
