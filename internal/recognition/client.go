// Package recognition wraps the external face-similarity service behind a
// small client. One call, one comparison; the client holds no state beyond
// connection settings and applies no retry policy. Retries, if wanted, are
// the caller's business.
package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"veriface/internal/attendance/models"
	"veriface/pkg/platform/circuit"
)

const (
	comparePath = "/v1/faces/compare"

	// DefaultSimilarityThreshold is the similarity floor, in percent, below
	// which a face pair is not counted as a match.
	DefaultSimilarityThreshold = 75.0

	storageKeyNotFoundCode = "storage_key_not_found"
)

// Client is an HTTP client for the face-similarity service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *circuit.Breaker
}

// Option configures a Client.
type Option func(*Client)

// WithBreaker guards calls with a circuit breaker. Transport failures and
// 5xx answers count against it; verdicts and 4xx answers count as healthy.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// New creates a recognition client. A zero timeout falls back to 30s; the
// comparison itself is a blocking remote call and must not hang forever.
func New(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compare submits one source/target image pair and maps the service answer
// to a verdict: at least one face match means Similar, an empty match list
// means Different. A structurally invalid payload is reported as
// ErrIndeterminatePayload, and a storage lookup miss as
// ErrSourceImageNotFound.
func (c *Client) Compare(ctx context.Context, source, target Image, threshold float64) (models.ComparisonVerdict, error) {
	if source.IsZero() || target.IsZero() {
		return "", fmt.Errorf("compare faces: both images are required")
	}
	if threshold < 0 || threshold > 100 {
		return "", fmt.Errorf("compare faces: threshold %v out of range [0,100]", threshold)
	}
	if c.breaker != nil && c.breaker.IsOpen() {
		return "", fmt.Errorf("compare faces: %s circuit is open", c.breaker.Name())
	}

	body, err := json.Marshal(compareRequest{
		SourceImage:         source,
		TargetImage:         target,
		SimilarityThreshold: threshold,
	})
	if err != nil {
		return "", fmt.Errorf("marshal compare request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+comparePath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create compare request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordOutcome(false)
		return "", fmt.Errorf("send compare request: %w", err)
	}
	defer resp.Body.Close()
	c.recordOutcome(resp.StatusCode < http.StatusInternalServerError)

	if resp.StatusCode != http.StatusOK {
		return "", c.mapFailure(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read compare response: %w", err)
	}

	var result compareResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("unmarshal compare response: %w", err)
	}

	if result.FaceMatches == nil {
		return "", ErrIndeterminatePayload
	}
	if len(*result.FaceMatches) == 0 {
		// Zero matches on a successful call is a conclusive "different",
		// not an indeterminate answer: absent by default.
		return models.VerdictDifferent, nil
	}
	return models.VerdictSimilar, nil
}

func (c *Client) recordOutcome(healthy bool) {
	if c.breaker == nil {
		return
	}
	if healthy {
		c.breaker.RecordSuccess()
	} else {
		c.breaker.RecordFailure()
	}
}

// mapFailure translates a non-200 response into a typed error. A 404 carrying
// the storage-key error code means a referenced image does not exist in the
// bucket; everything else is a generic gateway failure.
func (c *Client) mapFailure(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode == http.StatusNotFound {
		var er errorResponse
		if err := json.Unmarshal(raw, &er); err == nil && er.Error == storageKeyNotFoundCode {
			return fmt.Errorf("compare faces: %w", ErrSourceImageNotFound)
		}
	}

	return fmt.Errorf("compare request failed with status %d: %s", resp.StatusCode, string(raw))
}
