// services/drug/suggest.go
package drug

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/kpasag/MedTime/utils"

	"go.uber.org/zap"
)

const cacheKeyPrefix = "drug:suggest:"

// ndcResponse is the slice of the NDC directory payload we care about.
type ndcResponse struct {
	Results []struct {
		BrandName string `json:"brand_name"`
	} `json:"results"`
}

// Suggest returns deduplicated brand-name suggestions for a query prefix.
// Results are memoized in Redis keyed by the trimmed, lowercased query.
func (s *DefaultSuggestionService) Suggest(ctx context.Context, query string) ([]string, error) {
	logger := utils.GetLogger()

	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil, ErrEmptyQuery
	}

	cacheKey := cacheKeyPrefix + normalized
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var suggestions []string
			if err := json.Unmarshal([]byte(cached), &suggestions); err == nil {
				return suggestions, nil
			}
		}
	}

	suggestions, err := s.lookup(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if encoded, err := json.Marshal(suggestions); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, encoded, s.CacheTTL).Err(); err != nil {
				logger.Warn("failed to cache drug suggestions", zap.Error(err))
			}
		}
	}
	return suggestions, nil
}

// lookup queries the NDC directory by brand-name prefix and deduplicates the
// returned names case-insensitively, preserving upstream order.
func (s *DefaultSuggestionService) lookup(ctx context.Context, normalized string) ([]string, error) {
	params := url.Values{}
	params.Set("search", fmt.Sprintf("brand_name:%s*", normalized))
	params.Set("limit", fmt.Sprintf("%d", s.Limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, UpstreamError{Err: err}
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return nil, UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	// The directory answers 404 for a prefix with no matches.
	if resp.StatusCode == http.StatusNotFound {
		return []string{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, UpstreamError{Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var payload ndcResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, UpstreamError{Err: err}
	}

	seen := make(map[string]bool, len(payload.Results))
	suggestions := []string{}
	for _, result := range payload.Results {
		name := strings.TrimSpace(result.BrandName)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		suggestions = append(suggestions, name)
	}
	return suggestions, nil
}
