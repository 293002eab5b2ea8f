package erst

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "dk_provider_erst_search_duration_seconds",
	Help:    "Latency of ERST index searches",
	Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
})

// Searcher performs an exact-match query against the upstream index for a
// single CVR number.
type Searcher interface {
	SearchByLocalID(ctx context.Context, localID uint64) (SearchResult, error)
}

// SearchResult carries the upstream hit count alongside the decoded company
// documents. Total and len(Records) can disagree; the resolver treats that as
// an integrity violation.
type SearchResult struct {
	Total   int
	Records []*Record
}

// ClientConfig holds the upstream endpoint and credentials. Credentials are
// issued by ERST and supplied via the environment.
type ClientConfig struct {
	URL      string
	Username string
	Password string
	Timeout  time.Duration
}

// Client queries the cvr-permanent search index over HTTP.
type Client struct {
	cfg  ClientConfig
	http *http.Client
}

// NewClient builds a Client with bounded connect and overall timeouts so a
// stalled upstream cannot stall callers indefinitely.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.Timeout}).DialContext,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// The index never redirects; a redirect means something is
				// wrong between us and it.
				return http.ErrUseLastResponse
			},
		},
	}
}

type searchResponse struct {
	Hits struct {
		Total int `json:"total"`
		Hits  []struct {
			Source struct {
				Vrvirksomhed *Record `json:"Vrvirksomhed"`
			} `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// SearchByLocalID runs a size-1 exact term query on Vrvirksomhed.cvrNummer.
func (c *Client) SearchByLocalID(ctx context.Context, localID uint64) (SearchResult, error) {
	start := time.Now()
	defer func() {
		searchDuration.Observe(time.Since(start).Seconds())
	}()

	query := map[string]any{
		"from": 0,
		"size": 1,
		"query": map[string]any{
			"bool": map[string]any{
				"must": []any{
					map[string]any{
						"term": map[string]any{
							"Vrvirksomhed.cvrNummer": localID,
						},
					},
				},
			},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return SearchResult{}, fmt.Errorf("encode search query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return SearchResult{}, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.http.Do(req)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the error is diagnosable without logging
		// arbitrary amounts of upstream output.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return SearchResult{}, fmt.Errorf("search returned status %d: %s", resp.StatusCode, snippet)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return SearchResult{}, fmt.Errorf("decode search response: %w", err)
	}

	result := SearchResult{Total: decoded.Hits.Total}
	for _, hit := range decoded.Hits.Hits {
		if hit.Source.Vrvirksomhed != nil {
			result.Records = append(result.Records, hit.Source.Vrvirksomhed)
		}
	}
	return result, nil
}
