package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "hello there"}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "secret-key", 5*time.Second)
	text, err := c.GenerateContent(context.Background(), "say hello")
	require.NoError(t, err)

	assert.Equal(t, "hello there", text)
	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "say hello", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateContent_NonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "k", 5*time.Second)
	_, err := c.GenerateContent(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGenerateContent_MalformedResponseIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "k", 5*time.Second)
	_, err := c.GenerateContent(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestGenerateContent_NoCandidatesIsEmptyTextNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL, "test-model", "k", 5*time.Second)
	text, err := c.GenerateContent(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateContent_UnreachableServerIsAnError(t *testing.T) {
	// port 1 is never listening
	c := NewGeminiClient("http://127.0.0.1:1", "test-model", "k", time.Second)
	_, err := c.GenerateContent(context.Background(), "p")
	require.Error(t, err)
}

func TestNewGeminiClient_Defaults(t *testing.T) {
	c := NewGeminiClient("", "", "k", 0)
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Equal(t, DefaultModel, c.model)
}

func TestGenerateContent_HonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewGeminiClient(srv.URL, "test-model", "k", 0)
	_, err := c.GenerateContent(ctx, "p")
	require.Error(t, err)
}
