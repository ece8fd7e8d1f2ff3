package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Presigner exchanges an object-store key for a short-lived signed URL.
// Every call re-derives a fresh URL; implementations must not cache.
type Presigner interface {
	SignedURL(ctx context.Context, key string) (string, error)
}

// PresignClient talks to a presign endpoint over HTTP. When an internal
// service credential is present, it calls the endpoint directly with a bearer
// token; otherwise it calls a same-origin proxy endpoint that holds the
// credential itself.
type PresignClient struct {
	httpClient    *http.Client
	endpoint      string
	proxyEndpoint string
	internalKey   string
}

// NewPresignClient builds a PresignClient. A nil httpClient uses a default
// with a 10 second timeout.
func NewPresignClient(endpoint, proxyEndpoint, internalKey string, httpClient *http.Client) *PresignClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &PresignClient{
		httpClient:    httpClient,
		endpoint:      endpoint,
		proxyEndpoint: proxyEndpoint,
		internalKey:   internalKey,
	}
}

type presignRequest struct {
	Key string `json:"key"`
}

type presignResponse struct {
	URL string `json:"url"`
}

// SignedURL POSTs {key} to the presign endpoint and returns the url field of
// the response verbatim. Non-2xx responses yield a *PresignError carrying the
// extracted message.
func (c *PresignClient) SignedURL(ctx context.Context, key string) (string, error) {
	endpoint := c.proxyEndpoint
	bearer := ""
	if c.internalKey != "" {
		endpoint = c.endpoint
		bearer = "Bearer " + c.internalKey
	}

	body, err := json.Marshal(presignRequest{Key: key})
	if err != nil {
		return "", fmt.Errorf("marshal presign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build presign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("presign exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &PresignError{
			Status:  resp.StatusCode,
			Message: extractErrorMessage(resp),
		}
	}

	var out presignResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode presign response: %w", err)
	}
	return out.URL, nil
}

// extractErrorMessage pulls a human-readable message out of a non-2xx
// response: JSON {message} first, then raw body text, then a generic
// "Request failed with status N".
func extractErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
			var payload struct {
				Message string `json:"message"`
			}
			if jerr := json.Unmarshal(raw, &payload); jerr == nil && payload.Message != "" {
				return payload.Message
			}
		}
		if text := strings.TrimSpace(string(raw)); text != "" {
			return text
		}
	}
	return fmt.Sprintf("Request failed with status %d", resp.StatusCode)
}
