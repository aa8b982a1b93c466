package remote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanlens/scanlens/internal/issue"
	"github.com/scanlens/scanlens/pkg/shared/config"
)

func TestFetchIssue(t *testing.T) {
	payload := issue.ShowIssueRequest{
		Key:         "AX-1",
		IdeFilePath: "src/a.py",
		Message:     "injection",
		RuleKey:     "pythonsecurity:S3649",
		TextRange:   &issue.TextRange{StartLine: 2, EndLine: 2, EndOffset: 10},
		CodeSnippet: "def foo():",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/issues/show", r.URL.Path)
		assert.Equal(t, "AX-1", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client := NewClient(nil, config.DefaultConfig(), "sq-connection", server.URL, "")
	got, err := client.FetchIssue("AX-1")
	require.NoError(t, err)
	assert.Equal(t, "sq-connection", client.ConnectionID())
	assert.Equal(t, payload.RuleKey, got.RuleKey)
	assert.Equal(t, payload.CodeSnippet, got.CodeSnippet)
	require.NotNil(t, got.TextRange)
	assert.Equal(t, 2, got.TextRange.StartLine)
}

func TestFetchIssueServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	cfg := config.DefaultConfig()
	cfg.HTTPClient.RetryCount = 0
	client := NewClient(nil, cfg, "sq-connection", server.URL, "")
	_, err := client.FetchIssue("AX-404")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AX-404")
}

func TestFetchTaintVulnerability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/taints/show", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ideFilePath":"src/a.py","ruleKey":"javasecurity:S3649","workspaceFolderUri":"file:///ws"}`))
	}))
	defer server.Close()

	client := NewClient(nil, config.DefaultConfig(), "sq-connection", server.URL, "secret")
	got, err := client.FetchTaintVulnerability("T-1")
	require.NoError(t, err)
	assert.Equal(t, "javasecurity:S3649", got.RuleKey)
	assert.Equal(t, "file:///ws", got.WorkspaceFolderURI)
}
