// Package httpget wraps the plain HTTP fetching the pipeline needs:
// JSON APIs, HTML pages, and head-only reads for meta tags. Every call
// carries a timeout, a stable User-Agent and a per-host politeness delay.
package httpget

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"biodigest/internal/logger"
	"biodigest/internal/ratelimit"
	"biodigest/internal/retry"
)

type Client struct {
	hc        *http.Client
	userAgent string
	retryCfg  retry.Config
	throttle  *ratelimit.Throttle
}

func New(timeout time.Duration, userAgent string, retryCfg retry.Config, throttle *ratelimit.Throttle) *Client {
	return &Client{
		hc:        &http.Client{Timeout: timeout},
		userAgent: userAgent,
		retryCfg:  retryCfg,
		throttle:  throttle,
	}
}

// JSON fetches url and decodes the response body into v, retrying
// transient failures. A failure after all attempts is returned to the
// caller, who treats it as an empty result.
func (c *Client) JSON(ctx context.Context, rawURL string, v any) error {
	return retry.WithRetry(ctx, c.retryCfg, func() error {
		body, err := c.get(ctx, rawURL, 0)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("decode %s: %w", rawURL, err)
		}
		return nil
	})
}

// HTML fetches a page once and returns the final URL after redirects
// together with the body. Archive mirrors are detected via the final URL.
func (c *Client) HTML(ctx context.Context, rawURL string) (finalURL, body string, err error) {
	c.wait(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return rawURL, "", err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.hc.Do(req)
	if err != nil {
		return rawURL, "", err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("failed to close response body", "url", rawURL, "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return rawURL, "", fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return rawURL, "", err
	}

	finalURL = rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return finalURL, string(data), nil
}

// Head fetches only the first limit bytes of a page. Paywalled pages
// still serve their <head> in full, so this is enough for meta tags.
func (c *Client) Head(ctx context.Context, rawURL string, limit int64) (string, error) {
	body, err := c.get(ctx, rawURL, limit)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	c.wait(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9, */*;q=0.8")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("failed to close response body", "url", rawURL, "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	reader := io.Reader(resp.Body)
	if limit > 0 {
		reader = io.LimitReader(resp.Body, limit)
	}
	return io.ReadAll(reader)
}

func (c *Client) wait(rawURL string) {
	if c.throttle == nil {
		return
	}
	c.throttle.Wait(hostOf(rawURL))
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return strings.ToLower(strings.TrimPrefix(u.Host, "www."))
}
