package client

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

const decoderListPayload = `{"data":[{"id":"d1","name":"RSS","class_name":"RssDecoder","file_mime_type":"application/rss+xml","created_at":"2020-01-01","updated_at":"2020-01-01"}],"meta":{"pagination":{"total":1,"count":1,"per_page":15,"current_page":1,"total_pages":1,"links":{}}}}`

func TestDataStreamDecodersClient_All(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t, expectedRequest{
		Method:     http.MethodGet,
		Path:       "/data_stream_decoders",
		Query:      url.Values{},
		StatusCode: http.StatusOK,
		Body:       decoderListPayload,
	})
	client := NewTestClient(t, server.URL)

	list, err := client.DataStreamDecoders().All(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, list.Data, 1)

	decoder := list.Data[0]
	assert.Equal(t, "d1", decoder.ID)
	assert.Equal(t, "RSS", decoder.Name)
	assert.Equal(t, "RssDecoder", decoder.ClassName)
	assert.Equal(t, "application/rss+xml", decoder.FileMimeType)
	assert.Equal(t, "2020-01-01", decoder.CreatedAt)

	assert.Equal(t, 1, list.Meta.Pagination.Total)
	assert.Equal(t, 1, list.Meta.Pagination.Count)
	assert.Equal(t, 15, list.Meta.Pagination.PerPage)
	assert.Empty(t, list.Meta.Pagination.Links.Next)
}

func TestDataStreamDecodersClient_All_WithParams(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t, expectedRequest{
		Method: http.MethodGet,
		Path:   "/data_stream_decoders",
		Query: url.Values{
			"search":   []string{"rss"},
			"page":     []string{"2"},
			"limit":    []string{"5"},
			"order_by": []string{"name,asc"},
		},
		StatusCode: http.StatusOK,
		Body:       `{"data":[],"meta":{"pagination":{"total":6,"count":1,"per_page":5,"current_page":2,"total_pages":2,"links":{"previous":"https://api.emsearch.io/data_stream_decoders?page=1"}}}}`,
	})
	client := NewTestClient(t, server.URL)

	params := &emsearch.DataStreamDecoderListParams{
		ListParams: *emsearch.NewListParams().
			WithSearch("rss").
			WithPage(2).
			WithLimit(5).
			WithOrderBy("name", emsearch.SortAsc),
	}

	list, err := client.DataStreamDecoders().All(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, list.Data)
	assert.Equal(t, 2, list.Meta.Pagination.CurrentPage)
	assert.Equal(t, "https://api.emsearch.io/data_stream_decoders?page=1", list.Meta.Pagination.Links.Previous)
}

func TestDataStreamDecodersClient_CRUD(t *testing.T) {
	t.Parallel()

	RunOperationTests(t, []operationCase{
		{
			Name: "get",
			Expected: expectedRequest{
				Method:     http.MethodGet,
				Path:       "/data_stream_decoders/d1",
				Query:      url.Values{},
				StatusCode: http.StatusOK,
				Body:       single("d1"),
			},
			Call: func(ctx context.Context, client *Client) error {
				resp, err := client.DataStreamDecoders().Get(ctx, "d1", nil)
				if err == nil {
					assert.Equal(t, "d1", resp.Value().ID)
				}

				return err
			},
		},
		{
			Name: "create",
			Expected: expectedRequest{
				Method: http.MethodPost,
				Path:   "/data_stream_decoders",
				Form: url.Values{
					"name":           []string{"RSS"},
					"class_name":     []string{"RssDecoder"},
					"file_mime_type": []string{"application/rss+xml"},
				},
				StatusCode: http.StatusCreated,
				Body:       single("d1"),
			},
			Call: func(ctx context.Context, client *Client) error {
				_, err := client.DataStreamDecoders().Create(ctx, &emsearch.DataStreamDecoderCreateParams{
					Name:         "RSS",
					ClassName:    "RssDecoder",
					FileMimeType: "application/rss+xml",
				})

				return err
			},
		},
		{
			Name: "update sends only supplied fields",
			Expected: expectedRequest{
				Method:     http.MethodPatch,
				Path:       "/data_stream_decoders/d1",
				Form:       url.Values{"name": []string{"Atom"}},
				StatusCode: http.StatusOK,
				Body:       single("d1"),
			},
			Call: func(ctx context.Context, client *Client) error {
				_, err := client.DataStreamDecoders().Update(ctx, "d1", &emsearch.DataStreamDecoderUpdateParams{
					Name: emsearch.String("Atom"),
				})

				return err
			},
		},
		{
			Name: "delete",
			Expected: expectedRequest{
				Method:     http.MethodDelete,
				Path:       "/data_stream_decoders/d1",
				StatusCode: http.StatusNoContent,
			},
			Call: func(ctx context.Context, client *Client) error {
				_, err := client.DataStreamDecoders().Delete(ctx, "d1")

				return err
			},
		},
	})
}
