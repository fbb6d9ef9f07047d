//go:build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

func TestDataStreamDecoders_All(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)

	list, err := client.DataStreamDecoders().All(context.Background(), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, list.Meta.Pagination.Total, len(list.Data))

	for _, decoder := range list.Data {
		assert.NotEmpty(t, decoder.ID)
	}
}

func TestSyncTaskStatuses_Lifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()
	id := GenerateTestName("status")

	created, err := client.SyncTaskStatuses().Create(ctx, &emsearch.SyncTaskStatusCreateParams{ID: id})
	require.NoError(t, err)
	require.NotNil(t, created.Value())
	assert.Equal(t, id, created.Value().ID)

	fetched, err := client.SyncTaskStatuses().Get(ctx, id, &emsearch.GetParams{
		Include: emsearch.String("sync_task_status_versions"),
	})
	require.NoError(t, err)
	assert.Equal(t, id, fetched.Value().ID)

	_, err = client.SyncTaskStatuses().Delete(ctx, id)
	require.NoError(t, err)

	_, err = client.SyncTaskStatuses().Get(ctx, id, nil)
	require.Error(t, err)
	assert.True(t, emsearch.IsNotFound(err))
}

func TestProjects_NestedInclude(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)

	list, err := client.Projects().All(context.Background(), &emsearch.ProjectListParams{
		ListParams: *emsearch.NewListParams().
			WithInclude("search_engine", emsearch.Nested("data_stream", "data_stream_decoder")).
			WithLimit(5),
	})
	require.NoError(t, err)

	for _, project := range list.Data {
		engine := project.SearchEngine.Value()
		require.NotNil(t, engine, "project %s should embed its search engine", project.ID)
		assert.Equal(t, project.SearchEngineID, engine.ID)

		if stream := project.DataStream.Value(); stream != nil {
			assert.NotNil(t, stream.DataStreamDecoder.Value())
		}
	}
}

func TestUnauthorizedToken(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	config.BearerToken = "invalid-" + GenerateTestName("token")
	client := config.NewClient(t)

	_, err := client.Users().All(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, emsearch.IsUnauthorized(err))
}
