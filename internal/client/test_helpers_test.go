package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

const testToken = "test-token"

// NewTestClient creates a client talking to baseURL with the test token.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), &emsearch.Config{
		BearerToken: testToken,
		BaseURL:     baseURL,
	})
	require.NoError(t, err)

	return client
}

// expectedRequest describes what the fake server checks and answers.
type expectedRequest struct {
	Method string
	Path   string
	// Query, when set, must match the request query exactly.
	Query url.Values
	// Form, when set, must match the request form body exactly.
	Form url.Values

	StatusCode int
	Body       string
}

// newFakeServer starts a server that checks one request shape and answers
// with a canned response.
func newFakeServer(t *testing.T, expected expectedRequest) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expected.Method, request.Method)
		assert.Equal(t, expected.Path, request.URL.Path)
		assert.Equal(t, "Bearer "+testToken, request.Header.Get("Authorization"))

		if expected.Query != nil {
			assert.Equal(t, expected.Query, request.URL.Query())
		}

		if expected.Form != nil {
			body, err := io.ReadAll(request.Body)
			assert.NoError(t, err)

			form, err := url.ParseQuery(string(body))
			assert.NoError(t, err)
			assert.Equal(t, expected.Form, form)
		}

		if expected.Body != "" {
			writer.Header().Set("Content-Type", "application/json")
		}

		writer.WriteHeader(expected.StatusCode)

		if expected.Body != "" {
			_, _ = writer.Write([]byte(expected.Body))
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// operationCase is one row of a resource client table test.
type operationCase struct {
	Name     string
	Expected expectedRequest
	Call     func(ctx context.Context, client *Client) error
}

// RunOperationTests runs every case against its own fake server.
func RunOperationTests(t *testing.T, tests []operationCase) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := newFakeServer(t, testCase.Expected)
			client := NewTestClient(t, server.URL)

			err := testCase.Call(context.Background(), client)
			require.NoError(t, err)
		})
	}
}

// RunMismatchTest checks that call turns an unexpected status into an
// UnexpectedStatusCodeError carrying both codes.
func RunMismatchTest(t *testing.T, method, path string, expectedStatus int, call func(ctx context.Context, client *Client) error) {
	t.Helper()

	server := newFakeServer(t, expectedRequest{
		Method:     method,
		Path:       path,
		StatusCode: http.StatusUnprocessableEntity,
		Body:       `{"message":"The given data was invalid.","errors":{"name":["The name field is required."]}}`,
	})
	client := NewTestClient(t, server.URL)

	err := call(context.Background(), client)
	require.Error(t, err)

	statusErr, ok := emsearch.AsUnexpectedStatus(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, statusErr.StatusCode)
	assert.Equal(t, expectedStatus, statusErr.ExpectedStatusCode)
	require.NotNil(t, statusErr.Payload)
	assert.Equal(t, "The given data was invalid.", statusErr.Payload.GetMessage())
	assert.Equal(t, []string{"The name field is required."}, statusErr.FieldErrors()["name"])
}

const (
	emptyList = `{"data":[],"meta":{"pagination":{"total":0,"count":0,"per_page":15,"current_page":1,"total_pages":1,"links":[]}}}`
)

func single(id string) string {
	return `{"data":{"id":"` + id + `"}}`
}
