package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// DataStreamsClient implements emsearch.DataStreamsClient.
type DataStreamsClient struct {
	httpClient *internalhttp.Client
}

// NewDataStreamsClient creates a new data streams client.
func NewDataStreamsClient(httpClient *internalhttp.Client) *DataStreamsClient {
	return &DataStreamsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.DataStreamsClient.All.
func (c *DataStreamsClient) All(ctx context.Context, params *emsearch.DataStreamListParams) (*emsearch.DataStreamListResponse, error) {
	list, err := execute[emsearch.DataStreamListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreams,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing data streams: %w", err)
	}

	return list, nil
}

// Get implements emsearch.DataStreamsClient.Get.
func (c *DataStreamsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.DataStreamResponse, error) {
	resp, err := execute[emsearch.DataStreamResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStream,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting data stream: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.DataStreamsClient.Create.
func (c *DataStreamsClient) Create(ctx context.Context, params *emsearch.DataStreamCreateParams) (*emsearch.DataStreamResponse, error) {
	resp, err := execute[emsearch.DataStreamResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathDataStreams,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating data stream: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.DataStreamsClient.Update.
func (c *DataStreamsClient) Update(ctx context.Context, id string, params *emsearch.DataStreamUpdateParams) (*emsearch.DataStreamResponse, error) {
	resp, err := execute[emsearch.DataStreamResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathDataStream,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating data stream: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.DataStreamsClient.Delete.
func (c *DataStreamsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathDataStream,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting data stream: %w", err)
	}

	return resp, nil
}
