package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewSearchUseCasesCommand creates the search-use-cases command group
func NewSearchUseCasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "search-use-cases",
		Aliases: []string{"search-use-case", "use-cases", "uc"},
		Short:   "Manage search use cases",
		Long:    "List, inspect, create and delete the search configurations of projects",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.SearchUseCase]{
		Resource: "search use cases",
		Header:   []string{"ID", "Name", "Project", "Fields"},
		Row: func(useCase emsearch.SearchUseCase) []string {
			return []string{useCase.ID, useCase.Name, useCase.ProjectID, countOrNA(useCase.SearchUseCaseFieldsCount)}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("project-id", "", "filter by project")
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.SearchUseCase], error) {
			return client.SearchUseCases().All(ctx, &emsearch.SearchUseCaseListParams{
				ListParams: params,
				ProjectID:  optionalString(cmd, "project-id"),
			})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.SearchUseCase]{
		Resource: "search use case",
		Arg:      "SEARCH_USE_CASE_ID",
		Long:     "Display a search use case; use --include search_use_case_fields to list its fields",
		Details:  searchUseCaseDetails,
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.SearchUseCase], error) {
			return client.SearchUseCases().Get(ctx, id, params)
		},
	}))
	cmd.AddCommand(newSearchUseCasesCreateCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Resource: "search use case",
		Arg:      "SEARCH_USE_CASE_ID",
		Delete: func(ctx context.Context, client emsearch.Client, id string) (*emsearch.ErrorResponse, error) {
			return client.SearchUseCases().Delete(ctx, id)
		},
	}))

	return cmd
}

func searchUseCaseDetails(useCase *emsearch.SearchUseCase) [][]string {
	rows := [][]string{
		{"ID", useCase.ID},
		{"Name", useCase.Name},
		{"Project ID", useCase.ProjectID},
		{"Fields", countOrNA(useCase.SearchUseCaseFieldsCount)},
		{"Created", useCase.CreatedAt},
		{"Updated", useCase.UpdatedAt},
	}

	for _, field := range useCase.SearchUseCaseFields.Items() {
		rows = append(rows, []string{
			"Field " + field.Name,
			fmt.Sprintf("searchable=%s to_retrieve=%s", strconv.FormatBool(field.Searchable), strconv.FormatBool(field.ToRetrieve)),
		})
	}

	return rows
}

func newSearchUseCasesCreateCommand() *cobra.Command {
	var params emsearch.SearchUseCaseCreateParams

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a search use case",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			resp, err := client.SearchUseCases().Create(ctx, &params)
			if err != nil {
				return fmt.Errorf("failed to create search use case: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), resp, func() tableView {
				var rows [][]string
				if useCase := resp.Value(); useCase != nil {
					rows = searchUseCaseDetails(useCase)
				}

				return propertyView("Search use case created", rows)
			})
		},
	}

	cmd.Flags().StringVar(&params.ProjectID, "project-id", "", "owning project")
	cmd.Flags().StringVar(&params.Name, "name", "", "use case name")
	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
