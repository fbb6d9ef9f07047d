package commands

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

func TestSearchCommand(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/search_use_cases/uc1/search",
		status: http.StatusOK,
		body: `{"data":[{"title":"Red shoes","price":59.9},{"title":"Red boots","stock":null}],
			"meta":{"pagination":{"total":2,"count":2,"per_page":15,"current_page":1,"total_pages":1}}}`,
		check: func(t *testing.T, r *http.Request) {
			t.Helper()

			assert.Equal(t, "red shoes", r.URL.Query().Get("search"))
			assert.Equal(t, "15", r.URL.Query().Get("limit"))
		},
	})
	setupCLI(t, server.URL, constants.FormatTable)

	out, err := executeCommand(NewSearchCommand(), "uc1", "red", "shoes")
	require.NoError(t, err)
	assert.Contains(t, out, "Red shoes")
	assert.Contains(t, out, "59.9")
	assert.Contains(t, out, "Page 1 of 1 (2 results)")
}

func TestSearchCommand_Args(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1", constants.FormatTable)

	_, err := executeCommand(NewSearchCommand(), "uc1")
	require.Error(t, err)
}

func TestSearchView(t *testing.T) {
	view := searchView(&emsearch.SearchResponse{
		Data: []emsearch.Document{
			{"title": "a", "price": 1},
			{"title": "b", "tags": []any{"x"}},
		},
	})

	assert.Equal(t, []string{"price", "tags", "title"}, view.header)
	assert.Equal(t, [][]string{{"1", "", "a"}, {"", "[x]", "b"}}, view.rows)
}
