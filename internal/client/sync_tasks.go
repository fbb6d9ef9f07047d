package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SyncTasksClient implements emsearch.SyncTasksClient.
type SyncTasksClient struct {
	httpClient *internalhttp.Client
}

// NewSyncTasksClient creates a new sync tasks client.
func NewSyncTasksClient(httpClient *internalhttp.Client) *SyncTasksClient {
	return &SyncTasksClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.SyncTasksClient.All.
func (c *SyncTasksClient) All(ctx context.Context, params *emsearch.SyncTaskListParams) (*emsearch.SyncTaskListResponse, error) {
	list, err := execute[emsearch.SyncTaskListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTasks,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing sync tasks: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SyncTasksClient.Get.
func (c *SyncTasksClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.SyncTaskResponse, error) {
	resp, err := execute[emsearch.SyncTaskResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTask,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sync task: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SyncTasksClient.Create.
func (c *SyncTasksClient) Create(ctx context.Context, params *emsearch.SyncTaskCreateParams) (*emsearch.SyncTaskResponse, error) {
	resp, err := execute[emsearch.SyncTaskResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSyncTasks,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync task: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SyncTasksClient.Update.
func (c *SyncTasksClient) Update(ctx context.Context, id string, params *emsearch.SyncTaskUpdateParams) (*emsearch.SyncTaskResponse, error) {
	resp, err := execute[emsearch.SyncTaskResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSyncTask,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating sync task: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SyncTasksClient.Delete.
func (c *SyncTasksClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSyncTask,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting sync task: %w", err)
	}

	return resp, nil
}
