// Package woo provides the HTTP client for the WooCommerce REST API and the
// concrete implementations of the remote shop and category capability
// interfaces.
package woo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"partnerhub/config"

	"github.com/pkg/errors"
)

// Client is a thin JSON client over the WooCommerce REST API. Requests are
// authenticated with the consumer key/secret pair via basic auth.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	consumerKey    string
	consumerSecret string
	logger         *slog.Logger
}

// NewClient is the constructor for Client.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.Woo == nil {
		return nil, errors.New("woo configuration must be provided")
	}
	if strings.TrimSpace(cfg.Woo.BaseURL) == "" {
		return nil, errors.New("woo base url must be provided")
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Woo.Timeout,
		},
		baseURL:        strings.TrimSuffix(cfg.Woo.BaseURL, "/"),
		consumerKey:    cfg.Woo.ConsumerKey,
		consumerSecret: cfg.Woo.ConsumerSecret,
		logger:         logger,
	}, nil
}

// APIError is a non-2xx response from the WooCommerce REST API.
type APIError struct {
	StatusCode int
	Code       string // WooCommerce error code, e.g. woocommerce_rest_term_invalid
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("woo api error: status %d, code %q, message %q", e.StatusCode, e.Code, e.Message)
}

// do performs a single JSON request against the API. A nil out skips response
// decoding; a non-2xx status is returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request body")
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to call %s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var wireErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &wireErr); err == nil {
			apiErr.Code = wireErr.Code
			apiErr.Message = wireErr.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}

		c.logger.Warn("Woo request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("code", apiErr.Code),
		)

		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.Wrapf(err, "failed to unmarshal response from %s %s", method, path)
	}

	return nil
}

// remoteID digs the numeric shop id out of a create response. Deployments
// expose the id under different keys depending on how the shops collection is
// registered, so each known alias is tried in order.
func remoteID(payload map[string]any) (int64, bool) {
	for _, key := range []string{"id", "shop_id", "ID", "term_id"} {
		raw, ok := payload[key]
		if !ok || raw == nil {
			continue
		}

		switch v := raw.(type) {
		case float64:
			return int64(v), true
		case json.Number:
			if id, err := v.Int64(); err == nil {
				return id, true
			}
		case string:
			if id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				return id, true
			}
		case int64:
			return v, true
		case int:
			return int64(v), true
		}
	}

	return 0, false
}
