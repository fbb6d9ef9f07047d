package commands

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

const projectsPage = `{"data":[
	{"id":"p1","search_engine_id":"se1","name":"shop","created_at":"2020-01-01 10:00:00"},
	{"id":"p2","search_engine_id":"se1","data_stream_id":"ds1","name":"blog","created_at":"2020-01-02 10:00:00"}],
	"meta":{"pagination":{"total":2,"count":2,"per_page":15,"current_page":1,"total_pages":1,"links":[]}}}`

func TestNewProjectsCommand(t *testing.T) {
	cmd := NewProjectsCommand()
	assert.Equal(t, "projects", cmd.Use)
	assert.Equal(t, []string{"project"}, cmd.Aliases)

	for _, name := range []string{"list", "get", "create", "delete"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}

	list := findSubcommand(cmd, "list")
	for _, flag := range []string{"page", "limit", "search", "include", "order-by", "search-engine-id", "data-stream-id"} {
		assert.NotNil(t, list.Flags().Lookup(flag), "flag %s should exist", flag)
	}

	get := findSubcommand(cmd, "get")
	assert.Equal(t, "get PROJECT_ID", get.Use)
	assert.NotNil(t, get.Args)
}

func TestResourceCommandGroups(t *testing.T) {
	tests := []struct {
		name        string
		build       func() *cobra.Command
		subcommands []string
	}{
		{name: "data-streams", build: NewDataStreamsCommand, subcommands: []string{"list", "get", "delete"}},
		{name: "decoders", build: NewDecodersCommand, subcommands: []string{"list", "get"}},
		{name: "search-engines", build: NewSearchEnginesCommand, subcommands: []string{"list", "get"}},
		{name: "search-use-cases", build: NewSearchUseCasesCommand, subcommands: []string{"list", "get", "create", "delete"}},
		{name: "sync-tasks", build: NewSyncTasksCommand, subcommands: []string{"list", "get"}},
		{name: "users", build: NewUsersCommand, subcommands: []string{"list", "get"}},
		{name: "widgets", build: NewWidgetsCommand, subcommands: []string{"list", "get", "delete"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cmd := testCase.build()
			assert.Equal(t, testCase.name, cmd.Name())
			assert.Len(t, cmd.Commands(), len(testCase.subcommands))

			for _, name := range testCase.subcommands {
				assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
			}
		})
	}
}

func TestProjectsList_JSON(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/projects",
		status: http.StatusOK,
		body:   projectsPage,
		check: func(t *testing.T, r *http.Request) {
			t.Helper()

			assert.Equal(t, "se1", r.URL.Query().Get("search_engine_id"))
			assert.Equal(t, "15", r.URL.Query().Get("limit"))
			assert.False(t, r.URL.Query().Has("page"))
			assert.False(t, r.URL.Query().Has("data_stream_id"))
		},
	})
	setupCLI(t, server.URL, constants.FormatJSON)

	out, err := executeCommand(NewProjectsCommand(), "list", "--search-engine-id", "se1")
	require.NoError(t, err)

	var list emsearch.ProjectListResponse
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Data, 2)
	assert.Equal(t, "blog", list.Data[1].Name)
	assert.Equal(t, 2, list.Meta.Pagination.Total)
}

func TestProjectsList_Table(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/projects",
		status: http.StatusOK,
		body:   projectsPage,
	})
	setupCLI(t, server.URL, constants.FormatTable)

	out, err := executeCommand(NewProjectsCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "shop")
	assert.Contains(t, out, "ds1")
	assert.Contains(t, out, constants.NotAvailable)
	assert.Contains(t, out, "Page 1 of 1 (2 total)")
}

func TestProjectsGet_NotFound(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/projects/missing",
		status: http.StatusNotFound,
		body:   `{"message":"No query results for model [Project]."}`,
	})
	setupCLI(t, server.URL, constants.FormatTable)

	_, err := executeCommand(NewProjectsCommand(), "get", "missing")
	require.Error(t, err)
	assert.True(t, emsearch.IsNotFound(err))
	assert.Contains(t, err.Error(), "failed to get project")
	assert.Contains(t, err.Error(), "No query results")
}

func TestProjectsGet_Include(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/projects/p1",
		status: http.StatusOK,
		body:   `{"data":{"id":"p1","search_engine_id":"se1","name":"shop","search_engine":{"data":{"id":"se1","name":"Elastic"}}}}`,
		check: func(t *testing.T, r *http.Request) {
			t.Helper()

			assert.Equal(t, "search_engine", r.URL.Query().Get("include"))
		},
	})
	setupCLI(t, server.URL, constants.FormatTable)

	out, err := executeCommand(NewProjectsCommand(), "get", "p1", "--include", "search_engine")
	require.NoError(t, err)
	assert.Contains(t, out, "Elastic")
}

func TestProjectsCreate(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodPost,
		path:   "/projects",
		status: http.StatusCreated,
		body:   `{"data":{"id":"p3","search_engine_id":"se1","name":"docs"}}`,
		check: func(t *testing.T, r *http.Request) {
			t.Helper()

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "docs", r.PostForm.Get("name"))
			assert.Equal(t, "se1", r.PostForm.Get("search_engine_id"))
			assert.False(t, r.PostForm.Has("data_stream_id"))
		},
	})
	setupCLI(t, server.URL, constants.FormatYAML)

	out, err := executeCommand(NewProjectsCommand(), "create", "--name", "docs", "--search-engine-id", "se1")
	require.NoError(t, err)
	assert.Contains(t, out, "id: p3")
}

func TestProjectsCreate_RequiredFlags(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1", constants.FormatTable)

	_, err := executeCommand(NewProjectsCommand(), "create", "--name", "docs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search-engine-id")
}

func TestWidgetsDelete(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodDelete,
		path:   "/widgets/w1",
		status: http.StatusNoContent,
	})
	setupCLI(t, server.URL, constants.FormatTable)

	out, err := executeCommand(NewWidgetsCommand(), "delete", "w1")
	require.NoError(t, err)
	assert.Equal(t, "Deleted widget w1\n", out)
}

func TestSyncTasksList_Filters(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/sync_tasks",
		status: http.StatusOK,
		body:   `{"data":[{"id":"t1","sync_task_type_id":"full","sync_task_status_id":"running","project_id":"p1","planned_at":"2020-01-01 00:00:00"}],"meta":{"pagination":{"total":1,"count":1,"per_page":5,"current_page":2,"total_pages":2}}}`,
		check: func(t *testing.T, r *http.Request) {
			t.Helper()

			query := r.URL.Query()
			assert.Equal(t, "p1", query.Get("project_id"))
			assert.Equal(t, "running", query.Get("sync_task_status_id"))
			assert.Equal(t, "2", query.Get("page"))
			assert.Equal(t, "5", query.Get("limit"))
			assert.Equal(t, "planned_at,desc", query.Get("order_by"))
		},
	})
	setupCLI(t, server.URL, constants.FormatTable)

	out, err := executeCommand(NewSyncTasksCommand(), "list",
		"--project-id", "p1", "--status", "running", "--page", "2", "--limit", "5", "--order-by", "planned_at,desc")
	require.NoError(t, err)
	assert.Contains(t, out, "running")
	assert.Contains(t, out, "Page 2 of 2 (1 total)")
}

func TestCommands_NoToken(t *testing.T) {
	setupCLI(t, "http://127.0.0.1:1", constants.FormatTable)
	viper.Set("token", "")

	_, err := executeCommand(NewUsersCommand(), "list")
	require.ErrorIs(t, err, constants.ErrNoTokenConfigured)
}
