package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/productlens/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Open Food Facts API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Open Food Facts API client. The timeout bounds
// every product lookup; requestsPerMinute throttles outbound traffic
// (Open Food Facts asks clients to stay under 100 product queries/min).
func NewClient(baseURL, userAgent string, timeout time.Duration, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 100
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     baseURL,
		userAgent:   userAgent,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// lookupEnvelope is the outer structure of a product lookup response.
// The status field arrives as a number on the v2 endpoint but as a
// string on some mirrors, so it is decoded loosely.
type lookupEnvelope struct {
	Status        interface{}              `json:"status"`
	StatusVerbose string                   `json:"status_verbose"`
	Product       *domain.RawProductRecord `json:"product"`
}

// FetchProduct looks up one raw product record by barcode. It performs
// exactly one outbound request per invocation; retrying is the caller's
// policy, not this client's.
//
// Error classification:
//   - explicit upstream not-found (HTTP 404 or envelope status != 1)
//     yields domain.ErrProductNotFound
//   - transport failures, timeouts and other non-success statuses yield
//     domain.ErrUpstreamUnavailable
//   - a 200 response whose body is not the expected envelope yields
//     domain.ErrMalformedUpstream
func (c *Client) FetchProduct(ctx context.Context, barcode string) (*domain.RawProductRecord, error) {
	if c.debug {
		log.Printf("[OFF] FetchProduct called with barcode: %q", barcode)
	}

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrUpstreamUnavailable, err)
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.debug {
			log.Printf("[OFF] Request error: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	// Unknown barcodes come back as 404 with a status:0 JSON body
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[OFF] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var envelope lookupEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if c.debug {
			log.Printf("[OFF] JSON decode error: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedUpstream, err)
	}

	if !statusFound(envelope.Status) {
		if c.debug {
			log.Printf("[OFF] Product not found for barcode %q: %s", barcode, envelope.StatusVerbose)
		}
		return nil, domain.ErrProductNotFound
	}

	if envelope.Product == nil {
		return nil, fmt.Errorf("%w: status indicates found but product object is missing", domain.ErrMalformedUpstream)
	}

	return envelope.Product, nil
}

// statusFound reports whether the envelope status marks a found product.
func statusFound(status interface{}) bool {
	switch v := status.(type) {
	case float64:
		return v == 1
	case string:
		return v == "1" || v == "success"
	default:
		return false
	}
}
