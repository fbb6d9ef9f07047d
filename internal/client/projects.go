package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// ProjectsClient implements emsearch.ProjectsClient.
type ProjectsClient struct {
	httpClient *internalhttp.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *internalhttp.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.ProjectsClient.All.
func (c *ProjectsClient) All(ctx context.Context, params *emsearch.ProjectListParams) (*emsearch.ProjectListResponse, error) {
	list, err := execute[emsearch.ProjectListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathProjects,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return list, nil
}

// Get implements emsearch.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.ProjectResponse, error) {
	resp, err := execute[emsearch.ProjectResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathProject,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, params *emsearch.ProjectCreateParams) (*emsearch.ProjectResponse, error) {
	resp, err := execute[emsearch.ProjectResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathProjects,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, id string, params *emsearch.ProjectUpdateParams) (*emsearch.ProjectResponse, error) {
	resp, err := execute[emsearch.ProjectResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathProject,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathProject,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting project: %w", err)
	}

	return resp, nil
}
