package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SearchUseCaseFieldsClient implements emsearch.SearchUseCaseFieldsClient.
type SearchUseCaseFieldsClient struct {
	httpClient *internalhttp.Client
}

// NewSearchUseCaseFieldsClient creates a new search use case fields client.
func NewSearchUseCaseFieldsClient(httpClient *internalhttp.Client) *SearchUseCaseFieldsClient {
	return &SearchUseCaseFieldsClient{
		httpClient: httpClient,
	}
}

func searchUseCaseFieldKey(searchUseCaseID, dataStreamFieldID string) map[string]string {
	return map[string]string{
		"search_use_case_id":   searchUseCaseID,
		"data_stream_field_id": dataStreamFieldID,
	}
}

// All implements emsearch.SearchUseCaseFieldsClient.All.
func (c *SearchUseCaseFieldsClient) All(ctx context.Context, params *emsearch.SearchUseCaseFieldListParams) (*emsearch.SearchUseCaseFieldListResponse, error) {
	list, err := execute[emsearch.SearchUseCaseFieldListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCaseFields,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing search use case fields: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SearchUseCaseFieldsClient.Get.
func (c *SearchUseCaseFieldsClient) Get(ctx context.Context, searchUseCaseID, dataStreamFieldID string, params *emsearch.GetParams) (*emsearch.SearchUseCaseFieldResponse, error) {
	resp, err := execute[emsearch.SearchUseCaseFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCaseField,
		params:   searchUseCaseFieldKey(searchUseCaseID, dataStreamFieldID),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting search use case field: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SearchUseCaseFieldsClient.Create.
func (c *SearchUseCaseFieldsClient) Create(ctx context.Context, params *emsearch.SearchUseCaseFieldCreateParams) (*emsearch.SearchUseCaseFieldResponse, error) {
	resp, err := execute[emsearch.SearchUseCaseFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSearchUseCaseFields,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search use case field: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SearchUseCaseFieldsClient.Update.
func (c *SearchUseCaseFieldsClient) Update(ctx context.Context, searchUseCaseID, dataStreamFieldID string, params *emsearch.SearchUseCaseFieldUpdateParams) (*emsearch.SearchUseCaseFieldResponse, error) {
	resp, err := execute[emsearch.SearchUseCaseFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSearchUseCaseField,
		params:   searchUseCaseFieldKey(searchUseCaseID, dataStreamFieldID),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating search use case field: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SearchUseCaseFieldsClient.Delete.
func (c *SearchUseCaseFieldsClient) Delete(ctx context.Context, searchUseCaseID, dataStreamFieldID string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSearchUseCaseField,
		params:   searchUseCaseFieldKey(searchUseCaseID, dataStreamFieldID),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting search use case field: %w", err)
	}

	return resp, nil
}
