package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// ListConfig describes a paginated list subcommand.
type ListConfig[T any] struct {
	Resource string
	Long     string
	Header   []string
	Row      func(item T) []string
	Flags    func(cmd *cobra.Command)
	List     func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[T], error)
}

// GetConfig describes a single resource read subcommand.
type GetConfig[T any] struct {
	Resource string
	Arg      string
	Long     string
	Details  func(item *T) [][]string
	Get      func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[T], error)
}

// DeleteConfig describes a delete subcommand.
type DeleteConfig struct {
	Resource string
	Arg      string
	Delete   func(ctx context.Context, client emsearch.Client, id string) (*emsearch.ErrorResponse, error)
}

func createListCommand[T any](config ListConfig[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + config.Resource,
		Long:  config.Long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := listParamsFromFlags(cmd)

			list, err := config.List(ctx, client, cmd, params)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", config.Resource, err)
			}

			return renderOutput(cmd.OutOrStdout(), list, func() tableView {
				rows := make([][]string, 0, len(list.Data))
				for _, item := range list.Data {
					rows = append(rows, config.Row(item))
				}

				return tableView{
					header: config.Header,
					rows:   rows,
					footer: paginationFooter(list.Meta.Pagination),
				}
			})
		},
	}

	cmd.Flags().Int32("page", 1, "page number")
	cmd.Flags().Int32("limit", constants.DefaultPageSize, "items per page")
	cmd.Flags().String("search", "", "free-text filter")
	cmd.Flags().String("include", "", "relations to expand, e.g. project{search_engine}")
	cmd.Flags().String("order-by", "", "sort as field,asc or field,desc")

	if config.Flags != nil {
		config.Flags(cmd)
	}

	return cmd
}

func createGetCommand[T any](config GetConfig[T]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get " + config.Arg,
		Short: "Get " + config.Resource + " details",
		Long:  config.Long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			resp, err := config.Get(ctx, client, args[0], &emsearch.GetParams{Include: optionalString(cmd, "include")})
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", config.Resource, err)
			}

			return renderOutput(cmd.OutOrStdout(), resp, func() tableView {
				var rows [][]string
				if item := resp.Value(); item != nil {
					rows = config.Details(item)
				}

				return propertyView(config.Resource+" details", rows)
			})
		},
	}

	cmd.Flags().String("include", "", "relations to expand")

	return cmd
}

func createDeleteCommand(config DeleteConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "delete " + config.Arg,
		Short: "Delete a " + config.Resource,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			payload, err := config.Delete(ctx, client, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete %s: %w", config.Resource, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", config.Resource, args[0])

			if message := payload.GetMessage(); message != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
			}

			return nil
		},
	}
}

func listParamsFromFlags(cmd *cobra.Command) emsearch.ListParams {
	params := emsearch.ListParams{
		Include: optionalString(cmd, "include"),
		Search:  optionalString(cmd, "search"),
		OrderBy: optionalString(cmd, "order-by"),
	}

	if page, err := cmd.Flags().GetInt32("page"); err == nil && cmd.Flags().Changed("page") {
		params.Page = &page
	}

	if limit, err := cmd.Flags().GetInt32("limit"); err == nil {
		params.Limit = &limit
	}

	return params
}

// optionalString returns the flag value when the user set it.
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}

	return &value
}
