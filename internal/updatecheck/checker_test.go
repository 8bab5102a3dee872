package updatecheck_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/eventtracker/internal/updatecheck"
	"github.com/limbo/eventtracker/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func manifestServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			writeJSON(w, status, httputil.ErrorResponse{Code: status, Message: "manifest unavailable", Details: "maintenance"})
			return
		}
		writeJSON(w, status, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

func TestCheck(t *testing.T) {
	testCases := []struct {
		Desc    string
		Current string
		Status  int
		Body    any
		Want    updatecheck.Status
		Version string
	}{
		{
			Desc:    "newer version",
			Current: "1.2.0",
			Status:  http.StatusOK,
			Body:    updatecheck.Manifest{Version: "1.3.0", URL: "https://example.com/dl"},
			Want:    updatecheck.UpdateAvailable,
			Version: "1.3.0",
		},
		{
			Desc:    "same version",
			Current: "v1.2.0",
			Status:  http.StatusOK,
			Body:    updatecheck.Manifest{Version: "1.2.0"},
			Want:    updatecheck.UpToDate,
			Version: "1.2.0",
		},
		{
			Desc:    "older manifest",
			Current: "2.0.0",
			Status:  http.StatusOK,
			Body:    updatecheck.Manifest{Version: "1.9.9"},
			Want:    updatecheck.UpToDate,
			Version: "1.9.9",
		},
		{
			Desc:    "prerelease is older than release",
			Current: "1.2.0",
			Status:  http.StatusOK,
			Body:    updatecheck.Manifest{Version: "1.2.0-rc.1"},
			Want:    updatecheck.UpToDate,
			Version: "1.2.0-rc.1",
		},
		{
			Desc:    "bad manifest version",
			Current: "1.2.0",
			Status:  http.StatusOK,
			Body:    updatecheck.Manifest{Version: "latest"},
			Want:    updatecheck.CheckFailed,
		},
		{
			Desc:    "server error",
			Current: "1.2.0",
			Status:  http.StatusServiceUnavailable,
			Want:    updatecheck.CheckFailed,
		},
		{
			Desc:    "not a manifest",
			Current: "1.2.0",
			Status:  http.StatusOK,
			Body:    []int{1, 2},
			Want:    updatecheck.CheckFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			srv := manifestServer(t, tc.Status, tc.Body)
			c := updatecheck.NewChecker(srv.URL, tc.Current, time.Second, zap.NewNop())
			res := c.Check(context.Background())
			assert.Equal(t, tc.Want, res.Status)
			assert.Equal(t, tc.Version, res.Version)
			if tc.Want == updatecheck.CheckFailed {
				assert.NotEmpty(t, res.Reason)
			}
			if tc.Want == updatecheck.UpdateAvailable {
				assert.Equal(t, "https://example.com/dl", res.URL)
			}
		})
	}
}

func TestCheckWithoutURL(t *testing.T) {
	res := updatecheck.NewChecker("", "1.0.0", 0, zap.NewNop()).Check(context.Background())
	assert.Equal(t, updatecheck.CheckFailed, res.Status)
}

func TestCheckTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := updatecheck.NewChecker(srv.URL, "1.0.0", 50*time.Millisecond, zap.NewNop())
	start := time.Now()
	res := c.Check(context.Background())
	assert.Equal(t, updatecheck.CheckFailed, res.Status)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	ok := manifestServer(t, http.StatusOK, updatecheck.Manifest{Version: "9.0.0", URL: "https://example.com"})
	defer ok.Close()
	broken := manifestServer(t, http.StatusInternalServerError, nil)
	defer broken.Close()
	ctx := context.Background()

	t.Run("automatic success", func(t *testing.T) {
		c := updatecheck.NewChecker(ok.URL, "1.0.0", time.Second, zap.NewNop())
		res, open := <-c.Start(ctx, false)
		require.True(t, open)
		assert.Equal(t, updatecheck.UpdateAvailable, res.Status)
		assert.False(t, res.Manual)
	})
	t.Run("automatic failure is silent", func(t *testing.T) {
		c := updatecheck.NewChecker(broken.URL, "1.0.0", time.Second, zap.NewNop())
		_, open := <-c.Start(ctx, false)
		assert.False(t, open)
	})
	t.Run("manual failure is reported", func(t *testing.T) {
		c := updatecheck.NewChecker(broken.URL, "1.0.0", time.Second, zap.NewNop())
		res, open := <-c.Start(ctx, true)
		require.True(t, open)
		assert.Equal(t, updatecheck.CheckFailed, res.Status)
		assert.True(t, res.Manual)
		assert.Contains(t, res.Reason, "500")
	})
	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		c := updatecheck.NewChecker(ok.URL, "1.0.0", time.Second, zap.NewNop())
		_, open := <-c.Start(cctx, true)
		assert.False(t, open)
	})
}
