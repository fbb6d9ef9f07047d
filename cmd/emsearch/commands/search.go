package commands

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var (
		page  int32
		limit int32
	)

	cmd := &cobra.Command{
		Use:   "search SEARCH_USE_CASE_ID QUERY...",
		Short: "Run a free-text search",
		Long:  "Search the documents indexed for a search use case",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := &emsearch.SearchParams{
				Search: emsearch.String(strings.Join(args[1:], " ")),
				Limit:  &limit,
			}
			if cmd.Flags().Changed("page") {
				params.Page = &page
			}

			resp, err := client.SearchUseCases().Search(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to search: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), resp, func() tableView {
				return searchView(resp)
			})
		},
	}

	cmd.Flags().Int32Var(&page, "page", 1, "page number")
	cmd.Flags().Int32Var(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

// searchView lays documents out with one column per field, in name order.
func searchView(resp *emsearch.SearchResponse) tableView {
	columns := make(map[string]struct{})
	for _, document := range resp.Data {
		for key := range document {
			columns[key] = struct{}{}
		}
	}

	header := slices.Sorted(maps.Keys(columns))

	rows := make([][]string, 0, len(resp.Data))
	for _, document := range resp.Data {
		row := make([]string, len(header))
		for i, key := range header {
			if value, ok := document[key]; ok && value != nil {
				row[i] = fmt.Sprint(value)
			}
		}

		rows = append(rows, row)
	}

	pagination := resp.Meta.Pagination

	return tableView{
		header: header,
		rows:   rows,
		footer: fmt.Sprintf("Page %d of %d (%d results)", pagination.CurrentPage, pagination.TotalPages, pagination.Total),
	}
}
