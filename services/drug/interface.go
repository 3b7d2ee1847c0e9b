package drug

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrEmptyQuery signals a blank suggestion query.
var ErrEmptyQuery = errors.New("query is required")

// UpstreamError wraps a failure of the drug-product API.
type UpstreamError struct {
	Err error
}

func (e UpstreamError) Error() string {
	return "drug lookup failed: " + e.Err.Error()
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}

// SuggestionService proxies brand-name autocomplete against the drug-product
// directory, deduplicating results and memoizing them per normalized query.
type SuggestionService interface {
	Suggest(ctx context.Context, query string) ([]string, error)
}

// DefaultSuggestionService is the production implementation.
type DefaultSuggestionService struct {
	// BaseURL of the NDC directory endpoint.
	BaseURL string
	// Limit caps the number of upstream records requested.
	Limit int
	// Cache memoizes suggestion lists per normalized query; nil disables
	// memoization. Cache errors degrade to a direct lookup.
	Cache    *redis.Client
	CacheTTL time.Duration
	// Client is the outbound HTTP client; nil falls back to a default with a
	// bounded timeout.
	Client *http.Client
}

func (s *DefaultSuggestionService) httpClient() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}
