package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SearchUseCasesClient implements emsearch.SearchUseCasesClient.
type SearchUseCasesClient struct {
	httpClient *internalhttp.Client
}

// NewSearchUseCasesClient creates a new search use cases client.
func NewSearchUseCasesClient(httpClient *internalhttp.Client) *SearchUseCasesClient {
	return &SearchUseCasesClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.SearchUseCasesClient.All.
func (c *SearchUseCasesClient) All(ctx context.Context, params *emsearch.SearchUseCaseListParams) (*emsearch.SearchUseCaseListResponse, error) {
	list, err := execute[emsearch.SearchUseCaseListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCases,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing search use cases: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SearchUseCasesClient.Get.
func (c *SearchUseCasesClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.SearchUseCaseResponse, error) {
	resp, err := execute[emsearch.SearchUseCaseResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCase,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting search use case: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SearchUseCasesClient.Create.
func (c *SearchUseCasesClient) Create(ctx context.Context, params *emsearch.SearchUseCaseCreateParams) (*emsearch.SearchUseCaseResponse, error) {
	resp, err := execute[emsearch.SearchUseCaseResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSearchUseCases,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search use case: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SearchUseCasesClient.Update.
func (c *SearchUseCasesClient) Update(ctx context.Context, id string, params *emsearch.SearchUseCaseUpdateParams) (*emsearch.SearchUseCaseResponse, error) {
	resp, err := execute[emsearch.SearchUseCaseResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSearchUseCase,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating search use case: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SearchUseCasesClient.Delete.
func (c *SearchUseCasesClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSearchUseCase,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting search use case: %w", err)
	}

	return resp, nil
}

// Search implements emsearch.SearchUseCasesClient.Search. It runs a
// free-text query against the index behind the use case.
func (c *SearchUseCasesClient) Search(ctx context.Context, id string, params *emsearch.SearchParams) (*emsearch.SearchResponse, error) {
	resp, err := execute[emsearch.SearchResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCaseSearch,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("searching use case %s: %w", id, err)
	}

	return resp, nil
}
