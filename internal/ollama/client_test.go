package ollama

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient("http://localhost:11434", "llama2", 30*time.Second)

	require.NoError(t, err)
	assert.Equal(t, "llama2", client.Model())
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "llama2", time.Second)
	assert.Error(t, err)

	_, err = NewClient("http://localhost:11434", "", time.Second)
	assert.Error(t, err)
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(GenerateResponse{Response: "ok"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL+"/", "llama2", time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "/api/generate", gotPath)
}

func TestGenerate(t *testing.T) {
	var gotRequest GenerateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		json.NewEncoder(w).Encode(GenerateResponse{Response: `{"is_lab_record": true}`})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "llama2", time.Second)
	require.NoError(t, err)

	response, err := client.Generate(context.Background(), "classify this")

	require.NoError(t, err)
	assert.Equal(t, `{"is_lab_record": true}`, response)
	assert.Equal(t, "llama2", gotRequest.Model)
	assert.Equal(t, "classify this", gotRequest.Prompt)
	assert.False(t, gotRequest.Stream)
	assert.Equal(t, 0.1, gotRequest.Options.Temperature)
	assert.Equal(t, 0.9, gotRequest.Options.TopP)
}

func TestGenerateEmptyResponseField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateResponse{Response: ""})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "llama2", time.Second)
	require.NoError(t, err)

	response, err := client.Generate(context.Background(), "hi")

	assert.NoError(t, err)
	assert.Empty(t, response)
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "missing-model", time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGenerateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "llama2", time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode generate response")
}

func TestGenerateUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(server.URL, "llama2", time.Second)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "hi")

	assert.Error(t, err)
}

func TestGenerateHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect and
		// cancels the request context; otherwise Close deadlocks.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "llama2", 10*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.Generate(ctx, "hi")

	assert.Error(t, err)
}
