package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// DataStreamFieldsClient implements emsearch.DataStreamFieldsClient.
type DataStreamFieldsClient struct {
	httpClient *internalhttp.Client
}

// NewDataStreamFieldsClient creates a new data stream fields client.
func NewDataStreamFieldsClient(httpClient *internalhttp.Client) *DataStreamFieldsClient {
	return &DataStreamFieldsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.DataStreamFieldsClient.All.
func (c *DataStreamFieldsClient) All(ctx context.Context, params *emsearch.DataStreamFieldListParams) (*emsearch.DataStreamFieldListResponse, error) {
	list, err := execute[emsearch.DataStreamFieldListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamFields,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing data stream fields: %w", err)
	}

	return list, nil
}

// Get implements emsearch.DataStreamFieldsClient.Get.
func (c *DataStreamFieldsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.DataStreamFieldResponse, error) {
	resp, err := execute[emsearch.DataStreamFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamField,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting data stream field: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.DataStreamFieldsClient.Create.
func (c *DataStreamFieldsClient) Create(ctx context.Context, params *emsearch.DataStreamFieldCreateParams) (*emsearch.DataStreamFieldResponse, error) {
	resp, err := execute[emsearch.DataStreamFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathDataStreamFields,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating data stream field: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.DataStreamFieldsClient.Update.
func (c *DataStreamFieldsClient) Update(ctx context.Context, id string, params *emsearch.DataStreamFieldUpdateParams) (*emsearch.DataStreamFieldResponse, error) {
	resp, err := execute[emsearch.DataStreamFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathDataStreamField,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating data stream field: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.DataStreamFieldsClient.Delete.
func (c *DataStreamFieldsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathDataStreamField,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting data stream field: %w", err)
	}

	return resp, nil
}
