package client

import (
	"context"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// Client implements the emsearch.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     emsearch.Logger

	// Resource clients
	dataStreamDecoders        emsearch.DataStreamDecodersClient
	dataStreams               emsearch.DataStreamsClient
	dataStreamFields          emsearch.DataStreamFieldsClient
	dataStreamPresets         emsearch.DataStreamPresetsClient
	dataStreamPresetFields    emsearch.DataStreamPresetFieldsClient
	searchEngines             emsearch.SearchEnginesClient
	projects                  emsearch.ProjectsClient
	searchUseCases            emsearch.SearchUseCasesClient
	searchUseCaseFields       emsearch.SearchUseCaseFieldsClient
	searchUseCasePresets      emsearch.SearchUseCasePresetsClient
	searchUseCasePresetFields emsearch.SearchUseCasePresetFieldsClient
	i18nLangs                 emsearch.I18nLangsClient
	syncTaskTypes             emsearch.SyncTaskTypesClient
	syncTaskTypeVersions      emsearch.SyncTaskTypeVersionsClient
	syncTaskStatuses          emsearch.SyncTaskStatusesClient
	syncTaskStatusVersions    emsearch.SyncTaskStatusVersionsClient
	syncTasks                 emsearch.SyncTasksClient
	syncItems                 emsearch.SyncItemsClient
	users                     emsearch.UsersClient
	userHasProjects           emsearch.UserHasProjectsClient
	widgets                   emsearch.WidgetsClient
	widgetPresets             emsearch.WidgetPresetsClient
}

// createHTTPClientOptions builds HTTP client options from config. Global
// headers go first so the bearer token always wins.
func createHTTPClientOptions(config *emsearch.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithHeaders(config.Headers),
		http.WithBearerToken(config.BearerToken),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts,
			http.WithLogger(config.Logger),
			http.WithRequestInterceptor(emsearch.LoggingInterceptor(config.Logger)),
			http.WithResponseInterceptor(emsearch.LoggingResponseInterceptor(config.Logger)),
		)
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Metrics != nil {
		httpOpts = append(httpOpts,
			http.WithRequestInterceptor(emsearch.MetricsRequestInterceptor(config.Metrics)),
			http.WithResponseInterceptor(emsearch.MetricsResponseInterceptor(config.Metrics)),
		)
	}

	return httpOpts
}

// New creates a new emsearch API client. The base URL defaults to the
// production host; it is otherwise used as given.
func New(ctx context.Context, config *emsearch.Config) (*Client, error) {
	if config == nil {
		return nil, emsearch.ErrConfigRequired
	}

	if config.BearerToken == "" {
		return nil, emsearch.ErrBearerTokenRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// BaseURL implements emsearch.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Headers implements emsearch.Client.Headers.
func (c *Client) Headers() map[string]string {
	return c.httpClient.Headers()
}

// DataStreamDecoders implements emsearch.Client.DataStreamDecoders.
func (c *Client) DataStreamDecoders() emsearch.DataStreamDecodersClient {
	return c.dataStreamDecoders
}

// DataStreams implements emsearch.Client.DataStreams.
func (c *Client) DataStreams() emsearch.DataStreamsClient {
	return c.dataStreams
}

// DataStreamFields implements emsearch.Client.DataStreamFields.
func (c *Client) DataStreamFields() emsearch.DataStreamFieldsClient {
	return c.dataStreamFields
}

// DataStreamPresets implements emsearch.Client.DataStreamPresets.
func (c *Client) DataStreamPresets() emsearch.DataStreamPresetsClient {
	return c.dataStreamPresets
}

// DataStreamPresetFields implements emsearch.Client.DataStreamPresetFields.
func (c *Client) DataStreamPresetFields() emsearch.DataStreamPresetFieldsClient {
	return c.dataStreamPresetFields
}

// SearchEngines implements emsearch.Client.SearchEngines.
func (c *Client) SearchEngines() emsearch.SearchEnginesClient {
	return c.searchEngines
}

// Projects implements emsearch.Client.Projects.
func (c *Client) Projects() emsearch.ProjectsClient {
	return c.projects
}

// SearchUseCases implements emsearch.Client.SearchUseCases.
func (c *Client) SearchUseCases() emsearch.SearchUseCasesClient {
	return c.searchUseCases
}

// SearchUseCaseFields implements emsearch.Client.SearchUseCaseFields.
func (c *Client) SearchUseCaseFields() emsearch.SearchUseCaseFieldsClient {
	return c.searchUseCaseFields
}

// SearchUseCasePresets implements emsearch.Client.SearchUseCasePresets.
func (c *Client) SearchUseCasePresets() emsearch.SearchUseCasePresetsClient {
	return c.searchUseCasePresets
}

// SearchUseCasePresetFields implements emsearch.Client.SearchUseCasePresetFields.
func (c *Client) SearchUseCasePresetFields() emsearch.SearchUseCasePresetFieldsClient {
	return c.searchUseCasePresetFields
}

// I18nLangs implements emsearch.Client.I18nLangs.
func (c *Client) I18nLangs() emsearch.I18nLangsClient {
	return c.i18nLangs
}

// SyncTaskTypes implements emsearch.Client.SyncTaskTypes.
func (c *Client) SyncTaskTypes() emsearch.SyncTaskTypesClient {
	return c.syncTaskTypes
}

// SyncTaskTypeVersions implements emsearch.Client.SyncTaskTypeVersions.
func (c *Client) SyncTaskTypeVersions() emsearch.SyncTaskTypeVersionsClient {
	return c.syncTaskTypeVersions
}

// SyncTaskStatuses implements emsearch.Client.SyncTaskStatuses.
func (c *Client) SyncTaskStatuses() emsearch.SyncTaskStatusesClient {
	return c.syncTaskStatuses
}

// SyncTaskStatusVersions implements emsearch.Client.SyncTaskStatusVersions.
func (c *Client) SyncTaskStatusVersions() emsearch.SyncTaskStatusVersionsClient {
	return c.syncTaskStatusVersions
}

// SyncTasks implements emsearch.Client.SyncTasks.
func (c *Client) SyncTasks() emsearch.SyncTasksClient {
	return c.syncTasks
}

// SyncItems implements emsearch.Client.SyncItems.
func (c *Client) SyncItems() emsearch.SyncItemsClient {
	return c.syncItems
}

// Users implements emsearch.Client.Users.
func (c *Client) Users() emsearch.UsersClient {
	return c.users
}

// UserHasProjects implements emsearch.Client.UserHasProjects.
func (c *Client) UserHasProjects() emsearch.UserHasProjectsClient {
	return c.userHasProjects
}

// Widgets implements emsearch.Client.Widgets.
func (c *Client) Widgets() emsearch.WidgetsClient {
	return c.widgets
}

// WidgetPresets implements emsearch.Client.WidgetPresets.
func (c *Client) WidgetPresets() emsearch.WidgetPresetsClient {
	return c.widgetPresets
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.dataStreamDecoders = NewDataStreamDecodersClient(c.httpClient)
	c.dataStreams = NewDataStreamsClient(c.httpClient)
	c.dataStreamFields = NewDataStreamFieldsClient(c.httpClient)
	c.dataStreamPresets = NewDataStreamPresetsClient(c.httpClient)
	c.dataStreamPresetFields = NewDataStreamPresetFieldsClient(c.httpClient)
	c.searchEngines = NewSearchEnginesClient(c.httpClient)
	c.projects = NewProjectsClient(c.httpClient)
	c.searchUseCases = NewSearchUseCasesClient(c.httpClient)
	c.searchUseCaseFields = NewSearchUseCaseFieldsClient(c.httpClient)
	c.searchUseCasePresets = NewSearchUseCasePresetsClient(c.httpClient)
	c.searchUseCasePresetFields = NewSearchUseCasePresetFieldsClient(c.httpClient)
	c.i18nLangs = NewI18nLangsClient(c.httpClient)
	c.syncTaskTypes = NewSyncTaskTypesClient(c.httpClient)
	c.syncTaskTypeVersions = NewSyncTaskTypeVersionsClient(c.httpClient)
	c.syncTaskStatuses = NewSyncTaskStatusesClient(c.httpClient)
	c.syncTaskStatusVersions = NewSyncTaskStatusVersionsClient(c.httpClient)
	c.syncTasks = NewSyncTasksClient(c.httpClient)
	c.syncItems = NewSyncItemsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.userHasProjects = NewUserHasProjectsClient(c.httpClient)
	c.widgets = NewWidgetsClient(c.httpClient)
	c.widgetPresets = NewWidgetPresetsClient(c.httpClient)
}
