package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagetagger/internal/domain"
)

func TestComplete(t *testing.T) {
	var gotReq chatRequest
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"  sunset  "}}]}`))
	}))
	defer server.Close()

	c := NewClient(server.Client(), "sk-test", server.URL)
	out, err := c.Complete(context.Background(), []domain.ChatMessage{
		{Role: "system", Text: "you suggest tags"},
		{Role: "user", Text: "suggest one tag", ImageDataURL: "data:image/jpeg;base64,AAAA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "sunset", out, "reply must be trimmed")
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, Model, gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	// The image turn is encoded as a multi-part content array.
	parts, ok := gotReq.Messages[1].Content.([]any)
	require.True(t, ok)
	require.Len(t, parts, 2)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.Client(), "sk-test", server.URL).
		Complete(context.Background(), []domain.ChatMessage{{Role: "user", Text: "hi"}})
	require.ErrorContains(t, err, "bad key")
}

func TestComplete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := NewClient(server.Client(), "sk-test", server.URL).
		Complete(context.Background(), []domain.ChatMessage{{Role: "user", Text: "hi"}})
	require.Error(t, err)
}

func TestComplete_MissingAPIKey(t *testing.T) {
	_, err := NewClient(nil, "", "").
		Complete(context.Background(), []domain.ChatMessage{{Role: "user", Text: "hi"}})
	require.ErrorContains(t, err, "api key")
}
