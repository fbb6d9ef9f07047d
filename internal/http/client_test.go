package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	msgs := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		msgs = append(msgs, entry["msg"].(string))
	}

	return msgs
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("sets bearer token and accept header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer test-token", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("User-Agent"))

			_, _ = writer.Write([]byte(`{"data":[]}`))
		}))
		defer server.Close()

		client := emhttp.NewClient(server.URL, emhttp.WithBearerToken("test-token"))

		resp, err := client.Do(context.Background(), &emhttp.Request{Method: "GET", Path: "/projects"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `{"data":[]}`, string(resp.Body))
	})

	t.Run("global headers are sent with every request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "fr", request.Header.Get("Accept-Language"))
			assert.Equal(t, "Bearer token", request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		headers := map[string]string{"Accept-Language": "fr", "Authorization": "Basic other"}
		client := emhttp.NewClient(server.URL,
			emhttp.WithHeaders(headers),
			emhttp.WithBearerToken("token"),
		)

		headers["Accept-Language"] = "de"

		for range 2 {
			_, err := client.Get(context.Background(), "/users", nil)
			require.NoError(t, err)
		}

		assert.Equal(t, "fr", client.Headers()["Accept-Language"])
	})

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/data_streams", request.URL.Path)
			assert.Equal(t, "page=2", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := emhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/data_streams", url.Values{"page": []string{"2"}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("form body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", request.Header.Get("Content-Type"))
			require.NoError(t, request.ParseForm())
			assert.Equal(t, "my project", request.PostForm.Get("name"))

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := emhttp.NewClient(server.URL)

		resp, err := client.Post(context.Background(), "/projects", url.Values{"name": []string{"my project"}})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("delete sends no body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "DELETE", request.Method)
			assert.Empty(t, request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.Empty(t, body)

			writer.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := emhttp.NewClient(server.URL)

		resp, err := client.Delete(context.Background(), "/sync_task_statuses/done")
		require.NoError(t, err)
		assert.Equal(t, 204, resp.StatusCode)
		assert.Empty(t, resp.Body)
	})

	t.Run("error status is returned, not judged", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"message":"boom"}`))
		}))
		defer server.Close()

		client := emhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/projects", nil)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.JSONEq(t, `{"message":"boom"}`, string(resp.Body))
		assert.Equal(t, 1, attempts)
	})

	t.Run("network failure is an error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := emhttp.NewClient(serverURL)

		resp, err := client.Get(context.Background(), "/projects", nil)
		require.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := emhttp.NewClient(server.URL,
			emhttp.WithLogger(logger),
			emhttp.WithDebug(true),
			emhttp.WithBearerToken("secret-token"),
		)

		_, err := client.Get(context.Background(), "/projects", nil)
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")

		for _, entry := range logger.logs {
			assert.NotContains(t, entry["fields"], "Authorization")
			assert.NotContains(t, entry, "secret-token")
		}
	})

	t.Run("interceptors observe the request and response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "yes", request.Header.Get("X-Intercepted"))
			writer.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		var seenStatus int

		client := emhttp.NewClient(server.URL,
			emhttp.WithRequestInterceptor(func(ctx context.Context, req *emsearch.Request) error {
				req.Headers.Set("X-Intercepted", "yes")

				return nil
			}),
			emhttp.WithResponseInterceptor(func(ctx context.Context, req *emsearch.Request, resp *emsearch.InterceptedResponse) error {
				seenStatus = resp.StatusCode

				return nil
			}),
		)

		_, err := client.Get(context.Background(), "/widgets", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, seenStatus)
	})

	t.Run("path template reaches interceptors", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/widgets/w1", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		var seenPath, seenTemplate interface{}

		client := emhttp.NewClient(server.URL,
			emhttp.WithResponseInterceptor(func(ctx context.Context, req *emsearch.Request, resp *emsearch.InterceptedResponse) error {
				seenPath = req.Path
				seenTemplate = req.Metadata[emsearch.MetadataPathTemplate]

				return nil
			}),
		)

		_, err := client.Do(context.Background(), &emhttp.Request{
			Method:   http.MethodGet,
			Path:     "/widgets/w1",
			Template: "/widgets/{id}",
		})
		require.NoError(t, err)
		assert.Equal(t, "/widgets/w1", seenPath)
		assert.Equal(t, "/widgets/{id}", seenTemplate)
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*emhttp.Client, context.Context) (*emhttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *emhttp.Client, ctx context.Context) (*emhttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *emhttp.Client, ctx context.Context) (*emhttp.Response, error) {
				return c.Post(ctx, "/test", url.Values{"key": []string{"value"}})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *emhttp.Client, ctx context.Context) (*emhttp.Response, error) {
				return c.Patch(ctx, "/test", url.Values{"key": []string{"value"}})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *emhttp.Client, ctx context.Context) (*emhttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := emhttp.NewClient(server.URL)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_BaseURL(t *testing.T) {
	t.Parallel()

	client := emhttp.NewClient("https://api.example.com/")
	assert.Equal(t, "https://api.example.com", client.BaseURL())
}
