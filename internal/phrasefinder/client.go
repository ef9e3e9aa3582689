// Package phrasefinder queries the PhraseFinder search API, a remote
// n-gram corpus built from Google Books.
package phrasefinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/trknhr/phraseguess/internal/logger"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.phrasefinder.io"
	DefaultCorpus  = "eng-gb"
	DefaultTopK    = 100

	maxRequestsPerSecond = 2
)

// Token is one word of a result. Tag 0 marks words from the query, 1 marks
// words that filled a wildcard.
type Token struct {
	Text string `json:"tt"`
	Tag  int    `json:"tg"`
}

type Result struct {
	Tokens      []Token `json:"tks"`
	MatchCount  int64   `json:"mc"`
	VolumeCount int64   `json:"vc"`
	FirstYear   int     `json:"fy"`
	LastYear    int     `json:"ly"`
	ID          int64   `json:"id"`
	Score       float64 `json:"sc"`
}

type Query struct {
	Text string
	TopK int
}

type Searcher interface {
	Search(ctx context.Context, q Query) ([]Result, error)
}

// HTTPClient talks to the public API. A nil Limiter sends requests
// unthrottled.
type HTTPClient struct {
	BaseURL string
	Corpus  string
	Client  *http.Client
	Limiter *rate.Limiter
}

func NewHTTPClient(baseURL, corpusName string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if corpusName == "" {
		corpusName = DefaultCorpus
	}
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Corpus:  corpusName,
		Client:  &http.Client{Timeout: timeout},
		Limiter: rate.NewLimiter(maxRequestsPerSecond, 1),
	}
}

func (c *HTTPClient) Search(ctx context.Context, q Query) ([]Result, error) {
	topk := q.TopK
	if topk <= 0 {
		topk = DefaultTopK
	}
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("search not sent: %w", err)
		}
	}

	params := url.Values{}
	params.Set("corpus", c.Corpus)
	params.Set("query", q.Text)
	params.Set("topk", strconv.Itoa(topk))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		logger.Debug("[phrasefinder] request failed: %v", err)
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search returned %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed struct {
		Phrases []Result `json:"phrases"`
		Error   string   `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w\nbody=%s", err, string(body))
	}
	if parsed.Error != "" {
		return nil, fmt.Errorf("search failed: %s", parsed.Error)
	}
	logger.Debug("[phrasefinder] %q returned %d phrases", q.Text, len(parsed.Phrases))
	return parsed.Phrases, nil
}
