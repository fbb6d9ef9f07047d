package client

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

func TestSyncTaskStatusesClient_Delete(t *testing.T) {
	t.Parallel()

	t.Run("null message is a successful response", func(t *testing.T) {
		t.Parallel()

		server := newFakeServer(t, expectedRequest{
			Method:     http.MethodDelete,
			Path:       "/sync_task_statuses/planned",
			StatusCode: http.StatusNoContent,
		})
		client := NewTestClient(t, server.URL)

		resp, err := client.SyncTaskStatuses().Delete(context.Background(), "planned")
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.Nil(t, resp.Message)
	})

	t.Run("wrong status", func(t *testing.T) {
		t.Parallel()

		RunMismatchTest(t, http.MethodDelete, "/sync_task_statuses/planned", http.StatusNoContent, func(ctx context.Context, client *Client) error {
			_, err := client.SyncTaskStatuses().Delete(ctx, "planned")

			return err
		})
	})
}

func TestSyncTaskStatusesClient_Get_WithVersions(t *testing.T) {
	t.Parallel()

	server := newFakeServer(t, expectedRequest{
		Method:     http.MethodGet,
		Path:       "/sync_task_statuses/planned",
		Query:      url.Values{"include": []string{"sync_task_status_versions{i18n_lang}"}},
		StatusCode: http.StatusOK,
		Body: `{"data":{"id":"planned","created_at":"2020-01-01","updated_at":"2020-01-01",
			"sync_task_status_versions":{"data":[
				{"sync_task_status_id":"planned","i18n_lang_id":"en","description":"Planned","i18n_lang":{"data":{"id":"en","description":"English"}}},
				{"sync_task_status_id":"planned","i18n_lang_id":"fr","description":"Planifiée"}
			]}}}`,
	})
	client := NewTestClient(t, server.URL)

	resp, err := client.SyncTaskStatuses().Get(context.Background(), "planned", &emsearch.GetParams{
		Include: emsearch.String(emsearch.Nested("sync_task_status_versions", "i18n_lang")),
	})
	require.NoError(t, err)

	versions := resp.Value().SyncTaskStatusVersions.Items()
	require.Len(t, versions, 2)
	assert.Equal(t, "English", versions[0].I18nLang.Value().Description)
	assert.Nil(t, versions[1].I18nLang)
	assert.Nil(t, versions[1].SyncTaskStatus)

	statusID, langID := versions[1].Key()
	assert.Equal(t, "planned", statusID)
	assert.Equal(t, "fr", langID)
}
