// Package updatecheck asks a release manifest whether a newer version exists.
// It never touches catalog or credential state; callers get a Result value and
// decide what to show.
package updatecheck

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"

	"github.com/limbo/eventtracker/pkg/httputil"
)

const DefaultTimeout = 3 * time.Second

type Status string

const (
	UpToDate        Status = "up-to-date"
	UpdateAvailable Status = "update-available"
	CheckFailed     Status = "check-failed"
)

type Result struct {
	Status  Status `json:"status" yaml:"status"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
	// Manual is set for user-initiated checks.
	Manual bool `json:"manual" yaml:"manual"`
}

// Manifest is the document served at the update URL.
type Manifest struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}

type Checker struct {
	client  *http.Client
	url     string
	current string
	logger  *zap.Logger
}

func NewChecker(url, currentVersion string, timeout time.Duration, logger *zap.Logger) *Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		client:  &http.Client{Timeout: timeout},
		url:     url,
		current: currentVersion,
		logger:  logger,
	}
}

// Check fetches the manifest and compares versions. Every failure becomes a
// CheckFailed result.
func (c *Checker) Check(ctx context.Context) Result {
	if c.url == "" {
		return failed("no update URL configured")
	}
	current := canonical(c.current)
	if !semver.IsValid(current) {
		return failed("current version " + c.current + " is not a semantic version")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return failed("building request: " + err.Error())
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return failed("fetching manifest: " + err.Error())
	}
	defer resp.Body.Close()

	var m Manifest
	if err = httputil.DecodeJSONResponse(resp, &m); err != nil {
		return failed("reading manifest: " + err.Error())
	}
	latest := canonical(m.Version)
	if !semver.IsValid(latest) {
		return failed("manifest version " + m.Version + " is not a semantic version")
	}
	if semver.Compare(latest, current) > 0 {
		return Result{Status: UpdateAvailable, Version: m.Version, URL: m.URL}
	}
	return Result{Status: UpToDate, Version: m.Version}
}

// Start runs Check in the background. The channel yields at most one result
// and is then closed. Failed automatic checks yield nothing, since only a user
// who asked should hear about them. Cancelling ctx abandons the request.
func (c *Checker) Start(ctx context.Context, manual bool) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		res := c.Check(ctx)
		res.Manual = manual
		if res.Status == CheckFailed && !manual {
			c.logger.Debug("update check failed", zap.String("reason", res.Reason))
			return
		}
		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
		out <- res
	}()
	return out
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func failed(reason string) Result {
	return Result{Status: CheckFailed, Reason: reason}
}
