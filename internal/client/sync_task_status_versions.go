package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SyncTaskStatusVersionsClient implements emsearch.SyncTaskStatusVersionsClient.
type SyncTaskStatusVersionsClient struct {
	httpClient *internalhttp.Client
}

// NewSyncTaskStatusVersionsClient creates a new sync task status versions client.
func NewSyncTaskStatusVersionsClient(httpClient *internalhttp.Client) *SyncTaskStatusVersionsClient {
	return &SyncTaskStatusVersionsClient{
		httpClient: httpClient,
	}
}

func syncTaskStatusVersionKey(syncTaskStatusID, i18nLangID string) map[string]string {
	return map[string]string{
		"sync_task_status_id": syncTaskStatusID,
		"i18n_lang_id":        i18nLangID,
	}
}

// All implements emsearch.SyncTaskStatusVersionsClient.All.
func (c *SyncTaskStatusVersionsClient) All(ctx context.Context, params *emsearch.SyncTaskStatusVersionListParams) (*emsearch.SyncTaskStatusVersionListResponse, error) {
	list, err := execute[emsearch.SyncTaskStatusVersionListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskStatusVersions,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing sync task status versions: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SyncTaskStatusVersionsClient.Get.
func (c *SyncTaskStatusVersionsClient) Get(ctx context.Context, syncTaskStatusID, i18nLangID string, params *emsearch.GetParams) (*emsearch.SyncTaskStatusVersionResponse, error) {
	resp, err := execute[emsearch.SyncTaskStatusVersionResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskStatusVersion,
		params:   syncTaskStatusVersionKey(syncTaskStatusID, i18nLangID),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sync task status version: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SyncTaskStatusVersionsClient.Create.
func (c *SyncTaskStatusVersionsClient) Create(ctx context.Context, params *emsearch.SyncTaskStatusVersionCreateParams) (*emsearch.SyncTaskStatusVersionResponse, error) {
	resp, err := execute[emsearch.SyncTaskStatusVersionResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSyncTaskStatusVersions,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync task status version: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SyncTaskStatusVersionsClient.Update.
// The server answers 201 to a successful update of this resource.
func (c *SyncTaskStatusVersionsClient) Update(ctx context.Context, syncTaskStatusID, i18nLangID string, params *emsearch.SyncTaskStatusVersionUpdateParams) (*emsearch.SyncTaskStatusVersionResponse, error) {
	resp, err := execute[emsearch.SyncTaskStatusVersionResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSyncTaskStatusVersion,
		params:   syncTaskStatusVersionKey(syncTaskStatusID, i18nLangID),
		expected: constants.StatusUpdatedCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating sync task status version: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SyncTaskStatusVersionsClient.Delete.
func (c *SyncTaskStatusVersionsClient) Delete(ctx context.Context, syncTaskStatusID, i18nLangID string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSyncTaskStatusVersion,
		params:   syncTaskStatusVersionKey(syncTaskStatusID, i18nLangID),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting sync task status version: %w", err)
	}

	return resp, nil
}
