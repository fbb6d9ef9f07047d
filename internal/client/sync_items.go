package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SyncItemsClient implements emsearch.SyncItemsClient.
type SyncItemsClient struct {
	httpClient *internalhttp.Client
}

// NewSyncItemsClient creates a new sync items client.
func NewSyncItemsClient(httpClient *internalhttp.Client) *SyncItemsClient {
	return &SyncItemsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.SyncItemsClient.All.
func (c *SyncItemsClient) All(ctx context.Context, params *emsearch.SyncItemListParams) (*emsearch.SyncItemListResponse, error) {
	list, err := execute[emsearch.SyncItemListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncItems,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing sync items: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SyncItemsClient.Get.
func (c *SyncItemsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.SyncItemResponse, error) {
	resp, err := execute[emsearch.SyncItemResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSyncItem,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting sync item: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SyncItemsClient.Create.
func (c *SyncItemsClient) Create(ctx context.Context, params *emsearch.SyncItemCreateParams) (*emsearch.SyncItemResponse, error) {
	resp, err := execute[emsearch.SyncItemResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSyncItems,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating sync item: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SyncItemsClient.Update.
func (c *SyncItemsClient) Update(ctx context.Context, id string, params *emsearch.SyncItemUpdateParams) (*emsearch.SyncItemResponse, error) {
	resp, err := execute[emsearch.SyncItemResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSyncItem,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating sync item: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SyncItemsClient.Delete.
func (c *SyncItemsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSyncItem,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting sync item: %w", err)
	}

	return resp, nil
}
