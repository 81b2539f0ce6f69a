package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbonatakis/intimate/internal/catalog"
	"github.com/jbonatakis/intimate/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ report.TextGenerator = (*Client)(nil)

func TestGenerateSendsSingleTurnWithThinkingDisabled(t *testing.T) {
	var (
		gotPath   string
		gotKey    string
		gotMethod string
		gotBody   map[string]any
		calls     int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotKey = r.Header.Get("x-goog-api-key")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"## Overview\n"},{"text":"Looks good."}]},"finishReason":"STOP"}]}`)
	}))
	defer srv.Close()

	c := New(Config{APIKey: "secret", BaseURL: srv.URL + "/"})
	out, err := c.Generate(context.Background(), "hello prompt")
	require.NoError(t, err)

	assert.Equal(t, "## Overview\nLooks good.", out)
	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "secret", gotKey)

	contents := gotBody["contents"].([]any)
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]any)["parts"].([]any)
	assert.Equal(t, "hello prompt", parts[0].(map[string]any)["text"])

	thinking := gotBody["generationConfig"].(map[string]any)["thinkingConfig"].(map[string]any)
	assert.Equal(t, float64(0), thinking["thinkingBudget"])
}

func TestGenerateMapsErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid.","status":"INVALID_ARGUMENT"}}`)
	}))
	defer srv.Close()

	_, err := New(Config{APIKey: "bad", BaseURL: srv.URL}).Generate(context.Background(), "p")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "API key not valid.", apiErr.Message)
	assert.Contains(t, err.Error(), "400")
}

func TestGenerateNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).Generate(context.Background(), "p")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":[],"promptFeedback":{"blockReason":"SAFETY"}}`)
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestGenerateMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"candidates":`)
	}))
	defer srv.Close()

	_, err := New(Config{BaseURL: srv.URL}).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(Config{BaseURL: url}).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}

func TestGeneratorFallsBackOnClientFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := report.New(catalog.Default(), New(Config{APIKey: "k", BaseURL: srv.URL}))
	assert.Equal(t, report.UnavailableMessage, g.Generate(context.Background(), nil))
}

func TestNewDefaults(t *testing.T) {
	c := New(Config{Model: "  "})
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultBaseURL+"/v1beta/models/gemini-2.5-flash:generateContent", c.endpoint())

	c = New(Config{Model: "gemini-2.0-pro", BaseURL: "http://proxy.local/"})
	assert.Equal(t, "http://proxy.local/v1beta/models/gemini-2.0-pro:generateContent", c.endpoint())
}
