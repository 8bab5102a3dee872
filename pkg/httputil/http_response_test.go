package httputil_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/limbo/eventtracker/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestDecodeJSONResponse(t *testing.T) {
	type manifest struct {
		Version string `json:"version"`
	}
	testCases := []struct {
		Desc      string
		Status    int
		Body      string
		Want      manifest
		StatusErr *httputil.StatusError
		Error     bool
	}{
		{Desc: "ok", Status: http.StatusOK, Body: `{"version":"1.2.3"}`, Want: manifest{Version: "1.2.3"}},
		{
			Desc:      "error body",
			Status:    http.StatusServiceUnavailable,
			Body:      `{"code":503,"message":"manifest unavailable","details":"maintenance"}`,
			StatusErr: &httputil.StatusError{Code: http.StatusServiceUnavailable, Message: "manifest unavailable"},
		},
		{
			Desc:      "error without body",
			Status:    http.StatusNotFound,
			StatusErr: &httputil.StatusError{Code: http.StatusNotFound},
		},
		{Desc: "bad json", Status: http.StatusOK, Body: `{"version":`, Error: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			var got manifest
			err := httputil.DecodeJSONResponse(response(tc.Status, tc.Body), &got)
			switch {
			case tc.StatusErr != nil:
				var statusErr *httputil.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tc.StatusErr, statusErr)
			case tc.Error:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.Want, got)
			}
		})
	}
}

func TestStatusErrorMessage(t *testing.T) {
	assert.Equal(t, "unexpected status 500: down", (&httputil.StatusError{Code: 500, Message: "down"}).Error())
	assert.Equal(t, "unexpected status 404", (&httputil.StatusError{Code: 404}).Error())
}
