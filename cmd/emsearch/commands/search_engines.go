package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewSearchEnginesCommand creates the search-engines command group
func NewSearchEnginesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search-engines",
		Aliases: []string{"search-engine", "engines"},
		Short:   "List search engines",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.SearchEngine]{
		Resource: "search engines",
		Header:   []string{"ID", "Name", "Class"},
		Row: func(engine emsearch.SearchEngine) []string {
			return []string{engine.ID, engine.Name, engine.ClassName}
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.SearchEngine], error) {
			return client.SearchEngines().All(ctx, &emsearch.SearchEngineListParams{ListParams: params})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.SearchEngine]{
		Resource: "search engine",
		Arg:      "SEARCH_ENGINE_ID",
		Details: func(engine *emsearch.SearchEngine) [][]string {
			return [][]string{
				{"ID", engine.ID},
				{"Name", engine.Name},
				{"Class", engine.ClassName},
				{"Created", engine.CreatedAt},
				{"Updated", engine.UpdatedAt},
			}
		},
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.SearchEngine], error) {
			return client.SearchEngines().Get(ctx, id, params)
		},
	}))

	return cmd
}
