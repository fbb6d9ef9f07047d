package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewWidgetsCommand creates the widgets command group
func NewWidgetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "widgets",
		Aliases: []string{"widget"},
		Short:   "Manage search widgets",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.Widget]{
		Resource: "widgets",
		Header:   []string{"ID", "Name", "Techno", "Search Use Case"},
		Row: func(widget emsearch.Widget) []string {
			return []string{widget.ID, widget.Name, widget.Techno, widget.SearchUseCaseID}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("search-use-case-id", "", "filter by search use case")
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.Widget], error) {
			return client.Widgets().All(ctx, &emsearch.WidgetListParams{
				ListParams:      params,
				SearchUseCaseID: optionalString(cmd, "search-use-case-id"),
			})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.Widget]{
		Resource: "widget",
		Arg:      "WIDGET_ID",
		Details: func(widget *emsearch.Widget) [][]string {
			return [][]string{
				{"ID", widget.ID},
				{"Name", widget.Name},
				{"Techno", widget.Techno},
				{"Search Use Case ID", widget.SearchUseCaseID},
				{"Params", widget.Params},
				{"Created", widget.CreatedAt},
				{"Updated", widget.UpdatedAt},
			}
		},
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.Widget], error) {
			return client.Widgets().Get(ctx, id, params)
		},
	}))
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Resource: "widget",
		Arg:      "WIDGET_ID",
		Delete: func(ctx context.Context, client emsearch.Client, id string) (*emsearch.ErrorResponse, error) {
			return client.Widgets().Delete(ctx, id)
		},
	}))

	return cmd
}
