package phrasefinder_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/trknhr/phraseguess/internal/phrasefinder"
	"github.com/trknhr/phraseguess/internal/score"
)

func tokens(words ...string) []phrasefinder.Token {
	out := make([]phrasefinder.Token, len(words))
	for i, w := range words {
		out[i] = phrasefinder.Token{Text: w}
	}
	return out
}

func TestHTTPClient_Search(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method: %s", r.Method)
		}
		q := r.URL.Query()
		if q.Get("corpus") != "eng-us" || q.Get("query") != "much of a ?" || q.Get("topk") != "50" {
			t.Errorf("unexpected query: %v", q)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"phrases": []phrasefinder.Result{
				{Tokens: tokens("much", "of", "a", "muchness"), MatchCount: 470, Score: 0.97},
			},
		})
	}))
	defer mockServer.Close()

	client := &phrasefinder.HTTPClient{
		BaseURL: mockServer.URL,
		Corpus:  "eng-us",
		Client:  mockServer.Client(),
	}

	results, err := client.Search(context.Background(), phrasefinder.Query{Text: "much of a ?", TopK: 50})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(470), results[0].MatchCount)
	assert.Equal(t, "muchness", results[0].Tokens[3].Text)
}

func TestHTTPClient_Search_RateLimited(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"phrases":[]}`))
	}))
	defer srv.Close()

	client := phrasefinder.NewHTTPClient(srv.URL, "", time.Second)
	client.Limiter = rate.NewLimiter(rate.Every(time.Hour), 1)

	_, err := client.Search(context.Background(), phrasefinder.Query{Text: "a ?"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Search(ctx, phrasefinder.Query{Text: "a ?"})
	assert.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPClient_Search_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}},
		{"api error", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"invalid query"}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := phrasefinder.NewHTTPClient(srv.URL, "", time.Second)
			_, err := client.Search(context.Background(), phrasefinder.Query{Text: "a ?"})
			assert.Error(t, err)
		})
	}
}

type fakeSearcher struct {
	query   phrasefinder.Query
	results []phrasefinder.Result
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, q phrasefinder.Query) ([]phrasefinder.Result, error) {
	f.query = q
	return f.results, f.err
}

func TestBuildQuery(t *testing.T) {
	assert.Equal(t, "much of a ?", phrasefinder.BuildQuery([]string{"much", "of", "a"}, score.After, 1))
	assert.Equal(t, "? ? hissy", phrasefinder.BuildQuery([]string{"hissy"}, score.Before, 2))
	assert.Equal(t, "fit ?", phrasefinder.BuildQuery([]string{"fit"}, score.After, 0))
}

func TestSource_Corpus(t *testing.T) {
	fake := &fakeSearcher{results: []phrasefinder.Result{
		{Tokens: tokens("Much", "of", "a", "muchness"), MatchCount: 470, Score: 0.9},
		{Tokens: tokens("much", "of", "a", "difference"), MatchCount: 10, Score: 0.05},
		{Tokens: tokens("much", "of", "a", "blur"), MatchCount: 1, Score: 0.0001},
	}}
	src := phrasefinder.NewSource(fake, phrasefinder.DefaultMinScore, 20)

	c, err := src.Corpus(context.Background(), []string{"Much of a"}, score.After, 1)
	require.NoError(t, err)
	assert.Equal(t, "much of a ?", fake.query.Text)
	assert.Equal(t, 20, fake.query.TopK)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 480, c.Weight())

	got, err := score.NewScorer(c).Score([]string{"much", "of", "a"}, "muchness")
	require.NoError(t, err)
	assert.InDelta(t, 470.0/480*100, got, 1e-9)
}

func TestSource_Corpus_EmptyPattern(t *testing.T) {
	src := phrasefinder.NewSource(&fakeSearcher{}, 0, 0)
	_, err := src.Corpus(context.Background(), nil, score.After, 1)
	assert.ErrorIs(t, err, score.ErrEmptyPattern)
}
