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

func TestSearchUseCasesClient_Search(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t, expectedRequest{
		Method: http.MethodGet,
		Path:   "/search_use_cases/uc1/search",
		Query: url.Values{
			"search": []string{"red shoes"},
			"limit":  []string{"2"},
		},
		StatusCode: http.StatusOK,
		Body: `{"data":[{"title":"Red shoes","price":59.9},{"title":"Red sneakers","price":79}],
			"meta":{"pagination":{"total":12,"count":2,"per_page":2,"current_page":1,"total_pages":6}}}`,
	})
	client := NewTestClient(t, server.URL)

	resp, err := client.SearchUseCases().Search(context.Background(), "uc1", &emsearch.SearchParams{
		Search: emsearch.String("red shoes"),
		Limit:  emsearch.Int32(2),
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Red shoes", resp.Data[0]["title"])
	assert.InDelta(t, 79.0, resp.Data[1]["price"], 0.001)
	assert.Equal(t, 12, resp.Meta.Pagination.Total)
	assert.Equal(t, 6, resp.Meta.Pagination.TotalPages)
}

func TestSearchUseCasesClient_Search_Mismatch(t *testing.T) {
	t.Parallel()

	RunMismatchTest(t, http.MethodGet, "/search_use_cases/uc1/search", http.StatusOK, func(ctx context.Context, client *Client) error {
		_, err := client.SearchUseCases().Search(ctx, "uc1", nil)

		return err
	})
}

func TestSearchUseCasesClient_Get_Fields(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t, expectedRequest{
		Method:     http.MethodGet,
		Path:       "/search_use_cases/uc1",
		StatusCode: http.StatusOK,
		Body: `{"data":{"id":"uc1","project_id":"p1","name":"catalog","search_use_case_fields_count":1,
			"search_use_case_fields":{"data":[{"search_use_case_id":"uc1","data_stream_field_id":"f1","name":"title","searchable":true,"to_retrieve":false,
				"data_stream_field":{"data":{"id":"f1","data_stream_id":"ds1","name":"title","path":"title"}}}]}}}`,
	})
	client := NewTestClient(t, server.URL)

	resp, err := client.SearchUseCases().Get(context.Background(), "uc1", nil)
	require.NoError(t, err)

	useCase := resp.Value()
	require.NotNil(t, useCase.SearchUseCaseFieldsCount)
	assert.Equal(t, 1, *useCase.SearchUseCaseFieldsCount)
	assert.Nil(t, useCase.Project)

	fields := useCase.SearchUseCaseFields.Items()
	require.Len(t, fields, 1)
	assert.Equal(t, "ds1", fields[0].DataStreamField.Value().DataStreamID)
	assert.Nil(t, fields[0].SearchUseCase)
}
