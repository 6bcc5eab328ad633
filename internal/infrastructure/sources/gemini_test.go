package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"resty.dev/v3"

	"catalog-api/internal/domain/catalog"
)

func TestGeminiLiveSourcePaginatesAndStripsPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1beta/models", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			_, _ = w.Write([]byte(`{
				"models": [
					{
						"name": "models/gemini-2.5-pro",
						"displayName": "Gemini 2.5 Pro",
						"description": "Most capable Gemini model",
						"inputTokenLimit": 1048576,
						"outputTokenLimit": 65536
					}
				],
				"nextPageToken": "page-2"
			}`))
			return
		}
		require.Equal(t, "page-2", r.URL.Query().Get("pageToken"))
		_, _ = w.Write([]byte(`{
			"models": [
				{
					"name": "models/gemini-2.5-flash",
					"displayName": "Gemini 2.5 Flash",
					"inputTokenLimit": 1048576,
					"outputTokenLimit": 65536
				}
			]
		}`))
	}))
	defer server.Close()

	src := NewGeminiLiveSource(resty.New(), server.URL, "test-key")
	assert.Equal(t, catalog.SourceLiveAPI, src.Kind())

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	rec, ok := records["gemini-2.5-pro"]
	require.True(t, ok, "models/ prefix must be stripped")
	require.NotNil(t, rec.Name)
	assert.Equal(t, "Gemini 2.5 Pro", *rec.Name)
	require.NotNil(t, rec.ContextWindow)
	assert.Equal(t, 1048576, *rec.ContextWindow)
	require.NotNil(t, rec.MaxOutputTokens)
	assert.Equal(t, 65536, *rec.MaxOutputTokens)
}

func TestGeminiLiveSourceServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	src := NewGeminiLiveSource(resty.New(), server.URL, "test-key")
	_, err := src.Fetch(context.Background())

	require.Error(t, err)
	var se *statusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.status)
}
