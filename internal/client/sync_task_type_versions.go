package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SyncTaskTypeVersionsClient implements emsearch.SyncTaskTypeVersionsClient.
type SyncTaskTypeVersionsClient struct {
	httpClient *internalhttp.Client
}

// NewSyncTaskTypeVersionsClient creates a new sync task type versions client.
func NewSyncTaskTypeVersionsClient(httpClient *internalhttp.Client) *SyncTaskTypeVersionsClient {
	return &SyncTaskTypeVersionsClient{
		httpClient: httpClient,
	}
}

func syncTaskTypeVersionKey(syncTaskTypeID, i18nLangID string) map[string]string {
	return map[string]string{
		"sync_task_type_id": syncTaskTypeID,
		"i18n_lang_id":      i18nLangID,
	}
}

// All implements emsearch.SyncTaskTypeVersionsClient.All.
func (c *SyncTaskTypeVersionsClient) All(ctx context.Context, params *emsearch.SyncTaskTypeVersionListParams) (*emsearch.SyncTaskTypeVersionListResponse, error) {
	list, err := execute[emsearch.SyncTaskTypeVersionListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskTypeVersions,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing sync task type versions: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SyncTaskTypeVersionsClient.Get.
func (c *SyncTaskTypeVersionsClient) Get(ctx context.Context, syncTaskTypeID, i18nLangID string, params *emsearch.GetParams) (*emsearch.SyncTaskTypeVersionResponse, error) {
	resp, err := execute[emsearch.SyncTaskTypeVersionResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskTypeVersion,
		params:   syncTaskTypeVersionKey(syncTaskTypeID, i18nLangID),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sync task type version: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SyncTaskTypeVersionsClient.Create.
func (c *SyncTaskTypeVersionsClient) Create(ctx context.Context, params *emsearch.SyncTaskTypeVersionCreateParams) (*emsearch.SyncTaskTypeVersionResponse, error) {
	resp, err := execute[emsearch.SyncTaskTypeVersionResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSyncTaskTypeVersions,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync task type version: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SyncTaskTypeVersionsClient.Update.
// The server answers 201 to a successful update of this resource.
func (c *SyncTaskTypeVersionsClient) Update(ctx context.Context, syncTaskTypeID, i18nLangID string, params *emsearch.SyncTaskTypeVersionUpdateParams) (*emsearch.SyncTaskTypeVersionResponse, error) {
	resp, err := execute[emsearch.SyncTaskTypeVersionResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSyncTaskTypeVersion,
		params:   syncTaskTypeVersionKey(syncTaskTypeID, i18nLangID),
		expected: constants.StatusUpdatedCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating sync task type version: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SyncTaskTypeVersionsClient.Delete.
func (c *SyncTaskTypeVersionsClient) Delete(ctx context.Context, syncTaskTypeID, i18nLangID string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSyncTaskTypeVersion,
		params:   syncTaskTypeVersionKey(syncTaskTypeID, i18nLangID),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting sync task type version: %w", err)
	}

	return resp, nil
}
