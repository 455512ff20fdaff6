package names

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// HTTPSupplierConfig configures the external name-service client.
type HTTPSupplierConfig struct {
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	RateLimit    float64 // requests per second
}

// DefaultHTTPSupplierConfig returns recommended defaults.
func DefaultHTTPSupplierConfig(baseURL string) HTTPSupplierConfig {
	return HTTPSupplierConfig{
		BaseURL:      baseURL,
		Timeout:      10 * time.Second,
		MaxRetries:   3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		RateLimit:    5.0,
	}
}

// HTTPSupplier fetches names from an external name service with
// retries and rate limiting. Names are deduplicated locally since the
// service makes no uniqueness guarantee across calls.
type HTTPSupplier struct {
	client  *retryablehttp.Client
	limiter *rate.Limiter
	cfg     HTTPSupplierConfig
	logger  *logrus.Logger
	mu      sync.Mutex
	used    map[string]bool
}

type nameResponse struct {
	Name string `json:"name"`
}

// NewHTTPSupplier creates a name-service client.
func NewHTTPSupplier(cfg HTTPSupplierConfig, logger *logrus.Logger) *HTTPSupplier {
	if logger == nil {
		logger = logrus.New()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil

	return &HTTPSupplier{
		client:  retryClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		cfg:     cfg,
		logger:  logger,
		used:    make(map[string]bool),
	}
}

// Next fetches a fresh name, retrying the service until it yields one
// not seen before by this supplier.
func (s *HTTPSupplier) Next(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		name, err := s.fetch(ctx)
		if err != nil {
			return "", err
		}

		s.mu.Lock()
		duplicate := s.used[name]
		if !duplicate {
			s.used[name] = true
		}
		s.mu.Unlock()

		if !duplicate {
			return name, nil
		}
		s.logger.WithField("name", name).Debug("Name service returned a duplicate, retrying")
	}
	return "", fmt.Errorf("name service exhausted: too many duplicate names")
}

func (s *HTTPSupplier) fetch(ctx context.Context) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/v1/name", nil)
	if err != nil {
		return "", err
	}
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("name service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("name service returned status %d", resp.StatusCode)
	}

	var payload nameResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode name response: %w", err)
	}
	if payload.Name == "" {
		return "", fmt.Errorf("name service returned an empty name")
	}
	return payload.Name, nil
}

// Close releases idle connections.
func (s *HTTPSupplier) Close() error {
	s.client.HTTPClient.CloseIdleConnections()
	return nil
}
