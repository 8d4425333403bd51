package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEndpoint_NormalizesAndRejects(t *testing.T) {
	u, err := parseEndpoint("  api.spacex.land/graphql/#frag ")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "api.spacex.land", u.Host)
	assert.Equal(t, "/graphql/", u.Path)
	assert.Empty(t, u.Fragment)

	for _, bad := range []string{"", "   ", "ftp://example.com", "http://"} {
		_, err := parseEndpoint(bad)
		assert.Error(t, err, "parseEndpoint(%q)", bad)
	}
}

func TestRequestKey_StableAcrossVariableOrder(t *testing.T) {
	a := Request{Query: "q", Variables: map[string]any{"a": 1, "b": "x"}}
	b := Request{Query: "q", Variables: map[string]any{"b": "x", "a": 1}}
	assert.Equal(t, a.Key(), b.Key())

	c := Request{Query: "q", Variables: map[string]any{"a": 2, "b": "x"}}
	assert.NotEqual(t, a.Key(), c.Key())

	assert.NotEqual(t, Request{Query: "q"}.Key(), Request{Query: "q2"}.Key())
}

func TestClient_PostsDocumentWithHeadersAndReturnsData(t *testing.T) {
	t.Parallel()

	type captured struct {
		Method    string
		Body      map[string]any
		APIKey    string
		UserAgent string
		Type      string
	}
	got := make(chan captured, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		got <- captured{
			Method:    r.Method,
			Body:      body,
			APIKey:    r.Header.Get("x-api-key"),
			UserAgent: r.Header.Get("User-Agent"),
			Type:      r.Header.Get("Content-Type"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"comments":[{"id":"1","author":"ada"}]}}`))
	}))
	t.Cleanup(server.Close)

	fetch, err := New(server.URL, Config{Headers: map[string]string{"x-api-key": "secret"}})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	data, err := fetch(ctx, Request{
		Query:     "query C($flightNumber: Int!) { comments(flight_number: $flightNumber) { id author } }",
		Variables: map[string]any{"flightNumber": 7},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"comments":[{"id":"1","author":"ada"}]}`, string(data))

	req := <-got
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "secret", req.APIKey)
	assert.Equal(t, "application/json", req.Type)
	assert.True(t, strings.HasPrefix(req.UserAgent, "liftoff/"), "User-Agent = %q", req.UserAgent)
	assert.Contains(t, req.Body["query"], "comments(flight_number")
	assert.Equal(t, map[string]any{"flightNumber": float64(7)}, req.Body["variables"])
}

func TestClient_ResponseErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			http.Error(w, `{"errors":[{"message":"upstream down"}]}`, http.StatusBadGateway)
		case "/gqlerr":
			_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"Cannot query field"}]}`))
		case "/nodata":
			_, _ = w.Write([]byte(`{"data":null}`))
		case "/garbage":
			_, _ = w.Write([]byte(`{not-json`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		path   string
		status int
		want   string
	}{
		{"/status", http.StatusBadGateway, "upstream down"},
		{"/gqlerr", http.StatusOK, "Cannot query field"},
		{"/nodata", http.StatusOK, "response has no data"},
		{"/garbage", http.StatusOK, "malformed JSON body"},
	}
	for _, tc := range cases {
		t.Run(strings.TrimPrefix(tc.path, "/"), func(t *testing.T) {
			c, err := NewClient(server.URL+tc.path, Config{RetryMax: 0})
			require.NoError(t, err)

			_, err = c.Query(context.Background(), Request{Query: "{ launches { id } }"})
			require.Error(t, err)

			var re *ResponseError
			require.True(t, errors.As(err, &re), "error %v is not a ResponseError", err)
			assert.Equal(t, tc.status, re.Status)
			assert.Contains(t, err.Error(), tc.want)
			assert.False(t, IsTransport(err))
		})
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, Config{RetryMax: 1})
	require.NoError(t, err)

	data, err := c.Query(context.Background(), Request{Query: "{ ok }"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	c, err := NewClient(endpoint, Config{RetryMax: 0, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Query(context.Background(), Request{Query: "{ launches { id } }"})
	require.Error(t, err)
	assert.True(t, IsTransport(err), "error %v is not a TransportError", err)
	assert.False(t, IsResponse(err))
}

func TestClient_CancelledContextIsTransportError(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	c, err := NewClient(server.URL, Config{RetryMax: 0})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err = c.Query(ctx, Request{Query: "{ launches { id } }"})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_RejectsEmptyDocument(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:1", Config{})
	require.NoError(t, err)
	_, err = c.Query(context.Background(), Request{Query: "  "})
	assert.Error(t, err)
}
