package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewSyncTasksCommand creates the sync-tasks command group
func NewSyncTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync-tasks",
		Aliases: []string{"sync-task", "tasks"},
		Short:   "Inspect synchronisation tasks",
		Long:    "List and inspect the planned and running synchronisation jobs of projects",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.SyncTask]{
		Resource: "sync tasks",
		Header:   []string{"ID", "Type", "Status", "Project", "Parent", "Planned At"},
		Row: func(task emsearch.SyncTask) []string {
			return []string{task.ID, task.SyncTaskTypeID, task.SyncTaskStatusID, task.ProjectID, valueOrNA(task.SyncTaskID), task.PlannedAt}
		},
		Flags: func(cmd *cobra.Command) {
			cmd.Flags().String("project-id", "", "filter by project")
			cmd.Flags().String("status", "", "filter by sync task status id")
			cmd.Flags().String("type", "", "filter by sync task type id")
			cmd.Flags().String("parent", "", "filter by parent sync task")
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.SyncTask], error) {
			return client.SyncTasks().All(ctx, &emsearch.SyncTaskListParams{
				ListParams:       params,
				ProjectID:        optionalString(cmd, "project-id"),
				SyncTaskStatusID: optionalString(cmd, "status"),
				SyncTaskTypeID:   optionalString(cmd, "type"),
				SyncTaskID:       optionalString(cmd, "parent"),
			})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.SyncTask]{
		Resource: "sync task",
		Arg:      "SYNC_TASK_ID",
		Long:     "Display a sync task; use --include sync_tasks to list its children",
		Details: func(task *emsearch.SyncTask) [][]string {
			rows := [][]string{
				{"ID", task.ID},
				{"Type", task.SyncTaskTypeID},
				{"Status", task.SyncTaskStatusID},
				{"Project ID", task.ProjectID},
				{"Parent", valueOrNA(task.SyncTaskID)},
				{"Created By", task.CreatedByUserID},
				{"Planned At", task.PlannedAt},
				{"Children", countOrNA(task.SyncTasksCount)},
			}

			for _, child := range task.SyncTasks.Items() {
				rows = append(rows, []string{"Child " + child.ID, child.SyncTaskStatusID})
			}

			return rows
		},
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.SyncTask], error) {
			return client.SyncTasks().Get(ctx, id, params)
		},
	}))

	return cmd
}
