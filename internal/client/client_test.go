package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Debug(msg string, _ map[string]interface{}) { l.record(msg) }
func (l *recordingLogger) Info(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Warn(msg string, _ map[string]interface{})  { l.record(msg) }
func (l *recordingLogger) Error(msg string, _ map[string]interface{}) { l.record(msg) }

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, emsearch.ErrConfigRequired)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &emsearch.Config{BaseURL: "https://api.example.com"})
		require.ErrorIs(t, err, emsearch.ErrBearerTokenRequired)
	})

	t.Run("default base URL", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &emsearch.Config{BearerToken: "token"})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultBaseURL, client.BaseURL())
	})

	t.Run("every resource client is set", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &emsearch.Config{BearerToken: "token"})
		require.NoError(t, err)

		var _ emsearch.Client = client

		assert.NotNil(t, client.DataStreamDecoders())
		assert.NotNil(t, client.DataStreams())
		assert.NotNil(t, client.DataStreamFields())
		assert.NotNil(t, client.DataStreamPresets())
		assert.NotNil(t, client.DataStreamPresetFields())
		assert.NotNil(t, client.SearchEngines())
		assert.NotNil(t, client.Projects())
		assert.NotNil(t, client.SearchUseCases())
		assert.NotNil(t, client.SearchUseCaseFields())
		assert.NotNil(t, client.SearchUseCasePresets())
		assert.NotNil(t, client.SearchUseCasePresetFields())
		assert.NotNil(t, client.I18nLangs())
		assert.NotNil(t, client.SyncTaskTypes())
		assert.NotNil(t, client.SyncTaskTypeVersions())
		assert.NotNil(t, client.SyncTaskStatuses())
		assert.NotNil(t, client.SyncTaskStatusVersions())
		assert.NotNil(t, client.SyncTasks())
		assert.NotNil(t, client.SyncItems())
		assert.NotNil(t, client.Users())
		assert.NotNil(t, client.UserHasProjects())
		assert.NotNil(t, client.Widgets())
		assert.NotNil(t, client.WidgetPresets())
	})
}

func TestClient_Headers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer token", request.Header.Get("Authorization"))
		assert.Equal(t, "en", request.Header.Get("Accept-Language"))
		assert.Equal(t, "my-app/2.0", request.Header.Get("User-Agent"))

		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(emptyList))
	}))
	defer server.Close()

	headers := map[string]string{"Accept-Language": "en"}

	client, err := New(context.Background(), &emsearch.Config{
		BearerToken: "token",
		BaseURL:     server.URL + "/",
		Headers:     headers,
		UserAgent:   "my-app/2.0",
	})
	require.NoError(t, err)
	assert.Equal(t, server.URL, client.BaseURL())

	returned := client.Headers()
	assert.Equal(t, headers, returned)

	returned["Accept-Language"] = "fr"
	assert.Equal(t, "en", client.Headers()["Accept-Language"])

	_, err = client.Users().All(context.Background(), nil)
	require.NoError(t, err)
}

func TestClient_MetricsAndLogging(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/users/missing" {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		if request.URL.Path == "/users/u2" {
			_, _ = writer.Write([]byte(single("u2")))

			return
		}

		_, _ = writer.Write([]byte(emptyList))
	}))
	defer server.Close()

	collector := emsearch.NewMetricsCollector()
	logger := &recordingLogger{}

	client, err := New(context.Background(), &emsearch.Config{
		BearerToken: "token",
		BaseURL:     server.URL,
		Logger:      logger,
		Debug:       true,
		Metrics:     collector,
	})
	require.NoError(t, err)

	var wg sync.WaitGroup

	for range 5 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := client.Users().All(context.Background(), nil)
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	_, err = client.Users().Get(context.Background(), "missing", nil)
	require.True(t, emsearch.IsNotFound(err))

	_, err = client.Users().Get(context.Background(), "u2", nil)
	require.NoError(t, err)

	listMetrics, ok := collector.GetMetrics("GET /users")
	require.True(t, ok)
	assert.Equal(t, int64(5), listMetrics.TotalRequests)
	assert.Equal(t, int64(0), listMetrics.TotalErrors)

	getMetrics, ok := collector.GetMetrics("GET /users/{id}")
	require.True(t, ok)
	assert.Equal(t, int64(2), getMetrics.TotalRequests)
	assert.Equal(t, int64(1), getMetrics.TotalErrors)

	_, ok = collector.GetMetrics("GET /users/missing")
	assert.False(t, ok)

	assert.Contains(t, logger.messages, "HTTP Request")
	assert.Contains(t, logger.messages, "API Response")
}
