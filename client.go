package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	maxResponseSize = 10 * 1024 * 1024 // 10MB limit
	initialBackoff  = 2 * time.Second
	maxBackoff      = 30 * time.Second
)

// aocClient fetches puzzle inputs from the Advent of Code site.
type aocClient struct {
	base       *url.URL
	userAgent  string
	maxRetries int
	backoff    time.Duration
	http       *http.Client
	log        *logger
}

// newAOCClient creates a client authenticated with the session cookie.
func newAOCClient(cfg appConfig, session secret, log *logger) (*aocClient, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base_url %q must be absolute", cfg.BaseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if session.Expose() == "" {
		return nil, errors.New("session id is empty")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: session.Expose(), Path: "/"}})

	c := &aocClient{
		base:       u,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		backoff:    initialBackoff,
		log:        log,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
	}
	if c.userAgent == "" {
		c.userAgent = defaultUA
	}
	return c, nil
}

// apiError represents a non-2xx response from the site.
type apiError struct {
	StatusCode int
	Message    string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api %d", e.StatusCode)
}

// isAuthError reports a rejected session. The site answers 400 to a malformed
// session cookie.
func isAuthError(err error) bool {
	var ae *apiError
	return errors.As(err, &ae) && (ae.StatusCode == http.StatusBadRequest ||
		ae.StatusCode == http.StatusUnauthorized ||
		ae.StatusCode == http.StatusForbidden)
}

// isNotUnlocked reports a puzzle that is not published yet.
func isNotUnlocked(err error) bool {
	var ae *apiError
	return errors.As(err, &ae) && ae.StatusCode == http.StatusNotFound
}

func isRetryable(err error) bool {
	var ae *apiError
	return errors.As(err, &ae) && (ae.StatusCode == http.StatusTooManyRequests || ae.StatusCode >= 500)
}

// inputURL returns <base>/<year>/day/<day>/input.
func (c *aocClient) inputURL(year, day int) string {
	return c.base.JoinPath(strconv.Itoa(year), "day", strconv.Itoa(day), "input").String()
}

// Input streams the puzzle input for the given day. Rate limiting and server
// errors are retried with exponential backoff.
func (c *aocClient) Input(ctx context.Context, year, day int) (io.ReadCloser, error) {
	backoff := c.backoff
	for attempt := 0; ; attempt++ {
		body, err := c.get(ctx, c.inputURL(year, day))
		if err == nil {
			return body, nil
		}
		if !isRetryable(err) || attempt >= c.maxRetries {
			return nil, err
		}
		if c.log != nil {
			c.log.warnf("fetch %d day %d: %v, waiting %s...", year, day, err, backoff.Round(100*time.Millisecond))
		}
		if err := sleepCtx(ctx, backoff); err != nil {
			return nil, err
		}
		if backoff < maxBackoff {
			backoff = min(backoff*2, maxBackoff)
		}
	}
}

func (c *aocClient) get(ctx context.Context, reqURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer func() { _ = resp.Body.Close() }()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &apiError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
	}
	return limitedBody{Reader: io.LimitReader(resp.Body, maxResponseSize), Closer: resp.Body}, nil
}

// limitedBody caps reads from a response body while still closing it.
type limitedBody struct {
	io.Reader
	io.Closer
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
