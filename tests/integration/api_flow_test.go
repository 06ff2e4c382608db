package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	commandbus "mindflow-backend/application/commands/bus"
	commandhandlers "mindflow-backend/application/commands/handlers"
	querybus "mindflow-backend/application/queries/bus"
	queryhandlers "mindflow-backend/application/queries/handlers"
	"mindflow-backend/application/sagas"
	"mindflow-backend/application/services"
	domaincfg "mindflow-backend/domain/config"
	"mindflow-backend/infrastructure/config"
	"mindflow-backend/infrastructure/di"
	"mindflow-backend/infrastructure/messaging"
	"mindflow-backend/infrastructure/persistence/memory"
	"mindflow-backend/interfaces/http/rest"
	"mindflow-backend/pkg/observability"
)

// newTestServer wires the full HTTP stack over in-memory infrastructure.
// No authentication, no metrics endpoint, no AWS.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Environment:    "development",
		StorageBackend: "memory",
	}
	dc := domaincfg.DefaultDomainConfig()
	logger := zap.NewNop()
	metrics := observability.NewCollector("mindflow")
	blob := memory.NewBlobStore()
	publisher := messaging.NewNoopPublisher()

	analyzer := services.NewAnalyzerService(services.NewLocalClassifier(), nil, dc, logger, metrics)
	store := services.NewStoreService(blob, publisher, dc, logger, metrics)

	cmdBus := commandbus.NewCommandBus()
	require.NoError(t, commandhandlers.NewStoreCommandHandler(store).RegisterAll(cmdBus))
	qryBus := querybus.NewQueryBus()
	require.NoError(t, queryhandlers.NewStoreQueryHandler(store).RegisterAll(qryBus))

	container := &di.Container{
		Config:       cfg,
		DomainConfig: dc,
		Logger:       logger,
		Metrics:      metrics,
		BlobStore:    blob,
		Publisher:    publisher,
		Analyzer:     analyzer,
		Store:        store,
		CommandBus:   cmdBus,
		QueryBus:     qryBus,
		SaveNoteSaga: sagas.NewSaveNoteSaga(analyzer, store, logger),
	}

	server := httptest.NewServer(rest.NewRouter(container).Setup())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func TestSaveNoteFlow(t *testing.T) {
	server := newTestServer(t)

	// Analyze without saving.
	resp := postJSON(t, server.URL+"/api/v1/analysis/analyze", map[string]string{
		"text": "debugging the api code for my golang project",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var analysis struct {
		Results []struct {
			Path []string `json:"path"`
		} `json:"results"`
		Tags []string `json:"tags"`
	}
	decodeData(t, resp, &analysis)
	require.NotEmpty(t, analysis.Results)
	require.NotEmpty(t, analysis.Tags)

	// Save the note through the full analyze-refine-persist flow.
	resp = postJSON(t, server.URL+"/api/v1/documents/save-note", map[string]string{
		"content": "debugging the api code for my golang project",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var saved struct {
		Document struct {
			ID             string   `json:"id"`
			RefinedContent string   `json:"refinedContent"`
			Tags           []string `json:"tags"`
		} `json:"document"`
	}
	decodeData(t, resp, &saved)
	require.NotEmpty(t, saved.Document.ID)
	assert.NotEmpty(t, saved.Document.RefinedContent)
	require.NotEmpty(t, saved.Document.Tags)

	// The document is retrievable by id.
	getResp, err := http.Get(server.URL + "/api/v1/documents/" + saved.Document.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	getResp.Body.Close()

	// And findable by one of its tags.
	listResp, err := http.Get(server.URL + "/api/v1/documents?tag=" + url.QueryEscape(saved.Document.Tags[0]))
	require.NoError(t, err)
	var docs []struct {
		ID string `json:"id"`
	}
	decodeData(t, listResp, &docs)
	require.Len(t, docs, 1)
	assert.Equal(t, saved.Document.ID, docs[0].ID)

	// An unknown document is a 404.
	missingResp, err := http.Get(server.URL + "/api/v1/documents/no-such-id")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, missingResp.StatusCode)
	missingResp.Body.Close()
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/tasks", map[string]string{
		"categoryId": "health",
		"title":      "go for a run",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var task struct {
		ID        string `json:"id"`
		Completed bool   `json:"completed"`
	}
	decodeData(t, resp, &task)
	require.NotEmpty(t, task.ID)
	assert.False(t, task.Completed)

	// Blank titles are declined silently.
	resp = postJSON(t, server.URL+"/api/v1/tasks", map[string]string{
		"categoryId": "health",
		"title":      "   ",
	})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Toggle to complete.
	resp = postJSON(t, fmt.Sprintf("%s/api/v1/tasks/%s/toggle", server.URL, task.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &task)
	assert.True(t, task.Completed)

	listResp, err := http.Get(server.URL + "/api/v1/tasks?category=health")
	require.NoError(t, err)
	var tasks []struct {
		ID string `json:"id"`
	}
	decodeData(t, listResp, &tasks)
	assert.Len(t, tasks, 1)
}

func TestGraphETagRoundTrip(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/documents/save-note", map[string]string{
		"content": "reading a book about cooking recipes",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	graphResp, err := http.Get(server.URL + "/api/v1/graph")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, graphResp.StatusCode)

	etag := graphResp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	var view struct {
		Graph struct {
			Nodes []struct {
				ID string `json:"id"`
			} `json:"nodes"`
		} `json:"graph"`
	}
	decodeData(t, graphResp, &view)
	assert.NotEmpty(t, view.Graph.Nodes)

	// Asking again with the checksum yields 304 and no payload.
	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/graph", nil)
	require.NoError(t, err)
	req.Header.Set("If-None-Match", etag)

	cached, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer cached.Body.Close()
	assert.Equal(t, http.StatusNotModified, cached.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/ready"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}
