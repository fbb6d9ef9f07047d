package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SyncTaskStatusesClient implements emsearch.SyncTaskStatusesClient.
type SyncTaskStatusesClient struct {
	httpClient *internalhttp.Client
}

// NewSyncTaskStatusesClient creates a new sync task statuses client.
func NewSyncTaskStatusesClient(httpClient *internalhttp.Client) *SyncTaskStatusesClient {
	return &SyncTaskStatusesClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.SyncTaskStatusesClient.All.
func (c *SyncTaskStatusesClient) All(ctx context.Context, params *emsearch.SyncTaskStatusListParams) (*emsearch.SyncTaskStatusListResponse, error) {
	list, err := execute[emsearch.SyncTaskStatusListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskStatuses,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing sync task statuses: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SyncTaskStatusesClient.Get.
func (c *SyncTaskStatusesClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.SyncTaskStatusResponse, error) {
	resp, err := execute[emsearch.SyncTaskStatusResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskStatus,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sync task status: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SyncTaskStatusesClient.Create.
func (c *SyncTaskStatusesClient) Create(ctx context.Context, params *emsearch.SyncTaskStatusCreateParams) (*emsearch.SyncTaskStatusResponse, error) {
	resp, err := execute[emsearch.SyncTaskStatusResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSyncTaskStatuses,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync task status: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SyncTaskStatusesClient.Update.
func (c *SyncTaskStatusesClient) Update(ctx context.Context, id string, params *emsearch.SyncTaskStatusUpdateParams) (*emsearch.SyncTaskStatusResponse, error) {
	resp, err := execute[emsearch.SyncTaskStatusResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSyncTaskStatus,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating sync task status: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SyncTaskStatusesClient.Delete.
func (c *SyncTaskStatusesClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSyncTaskStatus,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting sync task status: %w", err)
	}

	return resp, nil
}
