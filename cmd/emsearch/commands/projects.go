package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewProjectsCommand creates the projects command group
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Manage projects",
		Long:    "List, create and delete emsearch projects",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.Project]{
		Resource: "projects",
		Long:     "List the projects visible to the token",
		Header:   []string{"ID", "Name", "Search Engine", "Data Stream", "Created"},
		Row: func(project emsearch.Project) []string {
			return []string{project.ID, project.Name, project.SearchEngineID, valueOrNA(project.DataStreamID), project.CreatedAt}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("search-engine-id", "", "filter by search engine")
			cmd.Flags().String("data-stream-id", "", "filter by data stream")
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.Project], error) {
			return client.Projects().All(ctx, &emsearch.ProjectListParams{
				ListParams:     params,
				SearchEngineID: optionalString(cmd, "search-engine-id"),
				DataStreamID:   optionalString(cmd, "data-stream-id"),
			})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.Project]{
		Resource: "project",
		Arg:      "PROJECT_ID",
		Long:     "Display a project, optionally with its search engine and data stream",
		Details:  projectDetails,
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.Project], error) {
			return client.Projects().Get(ctx, id, params)
		},
	}))
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(createDeleteCommand(DeleteConfig{
		Resource: "project",
		Arg:      "PROJECT_ID",
		Delete: func(ctx context.Context, client emsearch.Client, id string) (*emsearch.ErrorResponse, error) {
			return client.Projects().Delete(ctx, id)
		},
	}))

	return cmd
}

func projectDetails(project *emsearch.Project) [][]string {
	rows := [][]string{
		{"ID", project.ID},
		{"Name", project.Name},
		{"Search Engine ID", project.SearchEngineID},
		{"Data Stream ID", valueOrNA(project.DataStreamID)},
		{"Created", project.CreatedAt},
		{"Updated", project.UpdatedAt},
	}

	if engine := project.SearchEngine.Value(); engine != nil {
		rows = append(rows, []string{"Search Engine", engine.Name})
	}

	if stream := project.DataStream.Value(); stream != nil {
		rows = append(rows, []string{"Data Stream", stream.Name}, []string{"Feed URL", stream.FeedURL})
	}

	return rows
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		name           string
		searchEngineID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			resp, err := client.Projects().Create(ctx, &emsearch.ProjectCreateParams{
				SearchEngineID: searchEngineID,
				Name:           name,
				DataStreamID:   optionalString(cmd, "data-stream-id"),
			})
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), resp, func() tableView {
				var rows [][]string
				if project := resp.Value(); project != nil {
					rows = projectDetails(project)
				}

				return propertyView("Project created", rows)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&searchEngineID, "search-engine-id", "", "search engine backing the project")
	cmd.Flags().String("data-stream-id", "", "data stream feeding the project")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("search-engine-id")

	return cmd
}
