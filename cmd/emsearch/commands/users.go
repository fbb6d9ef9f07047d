package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Inspect users",
	}

	cmd.AddCommand(createListCommand(ListConfig[emsearch.User]{
		Resource: "users",
		Header:   []string{"ID", "Name", "Email"},
		Row: func(user emsearch.User) []string {
			return []string{user.ID, fullName(user), user.Email}
		},
		List: func(ctx context.Context, client emsearch.Client, cmd *cobra.Command, params emsearch.ListParams) (*emsearch.ListResponse[emsearch.User], error) {
			return client.Users().All(ctx, &emsearch.UserListParams{ListParams: params})
		},
	}))
	cmd.AddCommand(createGetCommand(GetConfig[emsearch.User]{
		Resource: "user",
		Arg:      "USER_ID",
		Long:     "Display a user; use --include user_has_projects to list memberships",
		Details: func(user *emsearch.User) [][]string {
			rows := [][]string{
				{"ID", user.ID},
				{"Name", fullName(*user)},
				{"Email", user.Email},
				{"Created", user.CreatedAt},
			}

			for _, membership := range user.UserHasProjects.Items() {
				rows = append(rows, []string{"Project " + membership.ProjectID, membership.RoleID})
			}

			return rows
		},
		Get: func(ctx context.Context, client emsearch.Client, id string, params *emsearch.GetParams) (*emsearch.Response[emsearch.User], error) {
			return client.Users().Get(ctx, id, params)
		},
	}))

	return cmd
}

func fullName(user emsearch.User) string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}
