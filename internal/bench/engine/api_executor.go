package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/juris-bench/internal/domain/document"
)

const apiSearchPath = "/v1/search"

// APIExecutor queries a remote retrieval service over HTTP.
type APIExecutor struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewAPIExecutor(name, baseURL string) *APIExecutor {
	return &APIExecutor{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type apiSearchRequest struct {
	Query string `json:"query"`
	Size  int    `json:"size"`
}

type apiSearchResponse struct {
	TotalMatches int64             `json:"total_matches"`
	Hits         []document.Ranked `json:"hits"`
}

func (e *APIExecutor) Search(ctx context.Context, query string, size int) (*Execution, error) {
	payload, err := json.Marshal(apiSearchRequest{Query: query, Size: size})
	if err != nil {
		return nil, fmt.Errorf("api encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+apiSearchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("api create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("api request: %w", err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, string(body))
	}

	var searchResp apiSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("api parse response: %w", err)
	}

	hits := sortByScore(searchResp.Hits)
	if len(hits) > size {
		hits = hits[:size]
	}
	return &Execution{
		Results:      hits,
		TotalMatches: searchResp.TotalMatches,
		Latency:      latency,
	}, nil
}

func (e *APIExecutor) Name() string { return e.name }
func (e *APIExecutor) Close() error { return nil }
