package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SyncTaskTypesClient implements emsearch.SyncTaskTypesClient.
type SyncTaskTypesClient struct {
	httpClient *internalhttp.Client
}

// NewSyncTaskTypesClient creates a new sync task types client.
func NewSyncTaskTypesClient(httpClient *internalhttp.Client) *SyncTaskTypesClient {
	return &SyncTaskTypesClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.SyncTaskTypesClient.All.
func (c *SyncTaskTypesClient) All(ctx context.Context, params *emsearch.SyncTaskTypeListParams) (*emsearch.SyncTaskTypeListResponse, error) {
	list, err := execute[emsearch.SyncTaskTypeListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskTypes,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing sync task types: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SyncTaskTypesClient.Get.
func (c *SyncTaskTypesClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.SyncTaskTypeResponse, error) {
	resp, err := execute[emsearch.SyncTaskTypeResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncTaskType,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sync task type: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SyncTaskTypesClient.Create.
func (c *SyncTaskTypesClient) Create(ctx context.Context, params *emsearch.SyncTaskTypeCreateParams) (*emsearch.SyncTaskTypeResponse, error) {
	resp, err := execute[emsearch.SyncTaskTypeResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSyncTaskTypes,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync task type: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SyncTaskTypesClient.Update.
func (c *SyncTaskTypesClient) Update(ctx context.Context, id string, params *emsearch.SyncTaskTypeUpdateParams) (*emsearch.SyncTaskTypeResponse, error) {
	resp, err := execute[emsearch.SyncTaskTypeResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSyncTaskType,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating sync task type: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SyncTaskTypesClient.Delete.
func (c *SyncTaskTypesClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSyncTaskType,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting sync task type: %w", err)
	}

	return resp, nil
}
