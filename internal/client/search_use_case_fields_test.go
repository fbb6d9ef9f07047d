package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

func TestSearchUseCaseFieldsClient_CompositeKey(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []operationCase{
		{
			Name: "get",
			Expected: expectedRequest{
				Method:     http.MethodGet,
				Path:       "/search_use_case_fields/uc1,f1",
				StatusCode: http.StatusOK,
				Body:       `{"data":{"search_use_case_id":"uc1","data_stream_field_id":"f1","name":"title"}}`,
			},
			Call: func(ctx context.Context, client *Client) error {
				resp, err := client.SearchUseCaseFields().Get(ctx, "uc1", "f1", nil)
				if err == nil {
					useCaseID, fieldID := resp.Value().Key()
					assert.Equal(t, "uc1", useCaseID)
					assert.Equal(t, "f1", fieldID)
				}

				return err
			},
		},
		{
			Name: "update",
			Expected: expectedRequest{
				Method:     http.MethodPatch,
				Path:       "/search_use_case_fields/uc1,f1",
				Form:       url.Values{"to_retrieve": []string{"1"}},
				StatusCode: http.StatusOK,
				Body:       `{"data":{"search_use_case_id":"uc1","data_stream_field_id":"f1","to_retrieve":true}}`,
			},
			Call: func(ctx context.Context, client *Client) error {
				_, err := client.SearchUseCaseFields().Update(ctx, "uc1", "f1", &emsearch.SearchUseCaseFieldUpdateParams{
					ToRetrieve: emsearch.Bool(true),
				})

				return err
			},
		},
		{
			Name: "delete",
			Expected: expectedRequest{
				Method:     http.MethodDelete,
				Path:       "/search_use_case_fields/uc1,f1",
				StatusCode: http.StatusNoContent,
			},
			Call: func(ctx context.Context, client *Client) error {
				_, err := client.SearchUseCaseFields().Delete(ctx, "uc1", "f1")

				return err
			},
		},
	})
}

func TestSearchUseCaseFieldsClient_Create(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t, expectedRequest{
		Method: http.MethodPost,
		Path:   "/search_use_case_fields",
		Form: url.Values{
			"search_use_case_id":   []string{"uc1"},
			"data_stream_field_id": []string{"f1"},
			"name":                 []string{"title"},
			"searchable":           []string{"0"},
		},
		StatusCode: http.StatusCreated,
		Body:       `{"data":{"search_use_case_id":"uc1","data_stream_field_id":"f1","name":"title","searchable":false,"to_retrieve":true}}`,
	})
	client := NewTestClient(t, server.URL)

	resp, err := client.SearchUseCaseFields().Create(context.Background(), &emsearch.SearchUseCaseFieldCreateParams{
		SearchUseCaseID:   "uc1",
		DataStreamFieldID: "f1",
		Name:              "title",
		Searchable:        emsearch.Bool(false),
	})
	require.NoError(t, err)
	assert.False(t, resp.Value().Searchable)
	assert.True(t, resp.Value().ToRetrieve)
}

func TestSearchUseCaseFieldsClient_EscapesKeyParts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/search_use_case_fields/a%20b,c%2Cd", request.URL.EscapedPath())
		assert.Equal(t, "/search_use_case_fields/a b,c,d", request.URL.Path)

		_, _ = writer.Write([]byte(`{"data":{"search_use_case_id":"a b","data_stream_field_id":"c,d"}}`))
	}))
	defer server.Close()

	client := NewTestClient(t, server.URL)

	resp, err := client.SearchUseCaseFields().Get(context.Background(), "a b", "c,d", nil)
	require.NoError(t, err)

	useCaseID, fieldID := resp.Value().Key()
	assert.Equal(t, "a b", useCaseID)
	assert.Equal(t, "c,d", fieldID)
}
