package jira

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GithubESPI/dotationsFrontend/internal/domain/jiraasset"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/config"
	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

const testWorkspace = "ws-123"

func assetJSON(id, serial string) map[string]any {
	return map[string]any{
		"id":         id,
		"objectKey":  "PI-" + id,
		"objectType": map[string]any{"id": "7", "name": "Laptop"},
		"attributes": []any{
			map[string]any{
				"objectTypeAttributeId": "100",
				"objectAttributeValues": []any{map[string]any{"value": serial}},
			},
		},
	}
}

func newTestClient(t *testing.T, handler http.Handler, cfg config.JiraConfig) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg.BaseURL = srv.URL
	if cfg.SiteURL == "" {
		cfg.SiteURL = srv.URL
	}
	return NewClient(cfg, logger.NewNopLogger())
}

func TestClient_WorkspaceDiscoveryIsCached(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/servicedeskapi/assets/workspace", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "it@example.com", user)
		assert.Equal(t, "secret", pass)
		_ = json.NewEncoder(w).Encode(map[string]any{"values": []any{map[string]any{"workspaceId": testWorkspace}}})
	})

	c := newTestClient(t, mux, config.JiraConfig{Email: "it@example.com", APIToken: `"secret"`})

	for i := 0; i < 2; i++ {
		id, err := c.WorkspaceID(t.Context())
		require.NoError(t, err)
		assert.Equal(t, testWorkspace, id)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_WorkspaceNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest/servicedeskapi/assets/workspace", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"values":[]}`))
	})
	c := newTestClient(t, mux, config.JiraConfig{})

	_, err := c.WorkspaceID(t.Context())
	require.Error(t, err)
}

func TestClient_ObjectTypeAssetsPaginates(t *testing.T) {
	var queries []string
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/aql", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer pat-token", r.Header.Get("Authorization"))

		var body aqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		queries = append(queries, body.QLQuery)

		start, _ := strconv.Atoi(r.URL.Query().Get("startAt"))
		size, _ := strconv.Atoi(r.URL.Query().Get("maxResults"))
		assert.Equal(t, "true", r.URL.Query().Get("includeAttributes"))

		const total = 5
		values := []any{}
		for i := start; i < start+size && i < total; i++ {
			values = append(values, assetJSON(strconv.Itoa(i+1), fmt.Sprintf("SN%04d", i+1)))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"startAt": start, "maxResults": size, "total": total,
			"isLast": start+size >= total, "values": values,
		})
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace, BearerToken: "pat-token", PageSize: 2})

	t.Run("reads every page", func(t *testing.T) {
		result, err := c.ObjectTypeAssets(t.Context(), "Parc Informatique", "Laptop", 0)
		require.NoError(t, err)
		require.Len(t, result.Assets, 5)
		assert.Equal(t, 5, result.Total)
		assert.Equal(t, "7", result.Assets[0].ObjectTypeID)

		serial, ok := jiraasset.AttributeValue(&result.Assets[4], "100")
		require.True(t, ok)
		assert.Equal(t, "SN0005", serial)
	})

	t.Run("stops at the limit", func(t *testing.T) {
		result, err := c.ObjectTypeAssets(t.Context(), "Parc Informatique", "Laptop", 3)
		require.NoError(t, err)
		assert.Len(t, result.Assets, 3)
	})

	require.NotEmpty(t, queries)
	assert.Equal(t, `objectSchema = "Parc Informatique" AND objectType = "Laptop"`, queries[0])
}

func TestClient_SearchByObjectType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/navlist/iql", func(w http.ResponseWriter, r *http.Request) {
		var body navlistRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "7", body.ObjectTypeID)
		assert.Equal(t, `Name like "Dell"`, body.IQL)
		assert.Equal(t, 1, body.ResultPerPage)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"objectEntries": []any{assetJSON("1", "SN1"), assetJSON("2", "SN2")},
		})
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace})

	objects, err := c.SearchByObjectType(t.Context(), "7", `Name like "Dell"`, 1)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "PI-1", objects[0].ObjectKey)
}

func TestClient_GetObject(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/42", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(assetJSON("42", "SN42"))
	})
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/500", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace})

	obj, err := c.GetObject(t.Context(), "42")
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "42", obj.ID)

	obj, err = c.GetObject(t.Context(), "404")
	require.NoError(t, err)
	assert.Nil(t, obj)

	_, err = c.GetObject(t.Context(), "500")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestClient_RetriesGatewayErrors(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/42", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(assetJSON("42", "SN42"))
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace})
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	obj, err := c.GetObject(t.Context(), "42")
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/42", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace, MaxRetries: 2})
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	_, err := c.GetObject(t.Context(), "42")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_HonoursRetryAfter(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/42", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(assetJSON("42", "SN42"))
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace})
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	start := time.Now()
	obj, err := c.GetObject(t.Context(), "42")
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.GreaterOrEqual(t, time.Since(start), 900*time.Millisecond)
}

func TestClient_RetryAfterOnLastAttemptKeepsJiraError(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/42", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "1")
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace, MaxRetries: -1})

	_, err := c.GetObject(t.Context(), "42")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, time.Second, apiErr.RetryAfter)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/jsm/assets/workspace/"+testWorkspace+"/v1/object/42", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	c := newTestClient(t, mux, config.JiraConfig{WorkspaceID: testWorkspace})
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }

	_, err := c.GetObject(t.Context(), "42")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 2*time.Second, parseRetryAfter("2"))
	assert.Zero(t, parseRetryAfter(""))
	assert.Zero(t, parseRetryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Zero(t, parseRetryAfter("-1"))
}

func TestQuoteAQL(t *testing.T) {
	assert.Equal(t, `"Parc \"IT\""`, quoteAQL(`Parc "IT"`))
	assert.Equal(t, `"a\\b"`, quoteAQL(`a\b`))
}
