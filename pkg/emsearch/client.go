package emsearch

import (
	"context"
	"net/http"
)

// DataStreamDecodersClient manages /data_stream_decoders.
type DataStreamDecodersClient interface {
	All(ctx context.Context, params *DataStreamDecoderListParams) (*DataStreamDecoderListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*DataStreamDecoderResponse, error)
	Create(ctx context.Context, params *DataStreamDecoderCreateParams) (*DataStreamDecoderResponse, error)
	Update(ctx context.Context, id string, params *DataStreamDecoderUpdateParams) (*DataStreamDecoderResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// DataStreamsClient manages /data_streams.
type DataStreamsClient interface {
	All(ctx context.Context, params *DataStreamListParams) (*DataStreamListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*DataStreamResponse, error)
	Create(ctx context.Context, params *DataStreamCreateParams) (*DataStreamResponse, error)
	Update(ctx context.Context, id string, params *DataStreamUpdateParams) (*DataStreamResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// DataStreamFieldsClient manages /data_stream_fields.
type DataStreamFieldsClient interface {
	All(ctx context.Context, params *DataStreamFieldListParams) (*DataStreamFieldListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*DataStreamFieldResponse, error)
	Create(ctx context.Context, params *DataStreamFieldCreateParams) (*DataStreamFieldResponse, error)
	Update(ctx context.Context, id string, params *DataStreamFieldUpdateParams) (*DataStreamFieldResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// DataStreamPresetsClient manages /data_stream_presets.
type DataStreamPresetsClient interface {
	All(ctx context.Context, params *DataStreamPresetListParams) (*DataStreamPresetListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*DataStreamPresetResponse, error)
	Create(ctx context.Context, params *DataStreamPresetCreateParams) (*DataStreamPresetResponse, error)
	Update(ctx context.Context, id string, params *DataStreamPresetUpdateParams) (*DataStreamPresetResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// DataStreamPresetFieldsClient manages /data_stream_preset_fields.
type DataStreamPresetFieldsClient interface {
	All(ctx context.Context, params *DataStreamPresetFieldListParams) (*DataStreamPresetFieldListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*DataStreamPresetFieldResponse, error)
	Create(ctx context.Context, params *DataStreamPresetFieldCreateParams) (*DataStreamPresetFieldResponse, error)
	Update(ctx context.Context, id string, params *DataStreamPresetFieldUpdateParams) (*DataStreamPresetFieldResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// SearchEnginesClient manages /search_engines.
type SearchEnginesClient interface {
	All(ctx context.Context, params *SearchEngineListParams) (*SearchEngineListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*SearchEngineResponse, error)
	Create(ctx context.Context, params *SearchEngineCreateParams) (*SearchEngineResponse, error)
	Update(ctx context.Context, id string, params *SearchEngineUpdateParams) (*SearchEngineResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// ProjectsClient manages /projects.
type ProjectsClient interface {
	All(ctx context.Context, params *ProjectListParams) (*ProjectListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*ProjectResponse, error)
	Create(ctx context.Context, params *ProjectCreateParams) (*ProjectResponse, error)
	Update(ctx context.Context, id string, params *ProjectUpdateParams) (*ProjectResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// SearchUseCasesClient manages /search_use_cases and the free-text search
// endpoint of each use case.
type SearchUseCasesClient interface {
	All(ctx context.Context, params *SearchUseCaseListParams) (*SearchUseCaseListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*SearchUseCaseResponse, error)
	Create(ctx context.Context, params *SearchUseCaseCreateParams) (*SearchUseCaseResponse, error)
	Update(ctx context.Context, id string, params *SearchUseCaseUpdateParams) (*SearchUseCaseResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
	Search(ctx context.Context, id string, params *SearchParams) (*SearchResponse, error)
}

// SearchUseCaseFieldsClient manages /search_use_case_fields. Entries are
// addressed by (search use case id, data stream field id).
type SearchUseCaseFieldsClient interface {
	All(ctx context.Context, params *SearchUseCaseFieldListParams) (*SearchUseCaseFieldListResponse, error)
	Get(ctx context.Context, searchUseCaseID, dataStreamFieldID string, params *GetParams) (*SearchUseCaseFieldResponse, error)
	Create(ctx context.Context, params *SearchUseCaseFieldCreateParams) (*SearchUseCaseFieldResponse, error)
	Update(ctx context.Context, searchUseCaseID, dataStreamFieldID string, params *SearchUseCaseFieldUpdateParams) (*SearchUseCaseFieldResponse, error)
	Delete(ctx context.Context, searchUseCaseID, dataStreamFieldID string) (*ErrorResponse, error)
}

// SearchUseCasePresetsClient manages /search_use_case_presets.
type SearchUseCasePresetsClient interface {
	All(ctx context.Context, params *SearchUseCasePresetListParams) (*SearchUseCasePresetListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*SearchUseCasePresetResponse, error)
	Create(ctx context.Context, params *SearchUseCasePresetCreateParams) (*SearchUseCasePresetResponse, error)
	Update(ctx context.Context, id string, params *SearchUseCasePresetUpdateParams) (*SearchUseCasePresetResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// SearchUseCasePresetFieldsClient manages /search_use_case_preset_fields.
type SearchUseCasePresetFieldsClient interface {
	All(ctx context.Context, params *SearchUseCasePresetFieldListParams) (*SearchUseCasePresetFieldListResponse, error)
	Get(ctx context.Context, searchUseCasePresetID, dataStreamPresetFieldID string, params *GetParams) (*SearchUseCasePresetFieldResponse, error)
	Create(ctx context.Context, params *SearchUseCasePresetFieldCreateParams) (*SearchUseCasePresetFieldResponse, error)
	Update(ctx context.Context, searchUseCasePresetID, dataStreamPresetFieldID string, params *SearchUseCasePresetFieldUpdateParams) (*SearchUseCasePresetFieldResponse, error)
	Delete(ctx context.Context, searchUseCasePresetID, dataStreamPresetFieldID string) (*ErrorResponse, error)
}

// I18nLangsClient manages /i18n_langs.
type I18nLangsClient interface {
	All(ctx context.Context, params *I18nLangListParams) (*I18nLangListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*I18nLangResponse, error)
	Create(ctx context.Context, params *I18nLangCreateParams) (*I18nLangResponse, error)
	Update(ctx context.Context, id string, params *I18nLangUpdateParams) (*I18nLangResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// SyncTaskTypesClient manages /sync_task_types.
type SyncTaskTypesClient interface {
	All(ctx context.Context, params *SyncTaskTypeListParams) (*SyncTaskTypeListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*SyncTaskTypeResponse, error)
	Create(ctx context.Context, params *SyncTaskTypeCreateParams) (*SyncTaskTypeResponse, error)
	Update(ctx context.Context, id string, params *SyncTaskTypeUpdateParams) (*SyncTaskTypeResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// SyncTaskTypeVersionsClient manages /sync_task_type_versions. Entries are
// addressed by (sync task type id, language id).
type SyncTaskTypeVersionsClient interface {
	All(ctx context.Context, params *SyncTaskTypeVersionListParams) (*SyncTaskTypeVersionListResponse, error)
	Get(ctx context.Context, syncTaskTypeID, i18nLangID string, params *GetParams) (*SyncTaskTypeVersionResponse, error)
	Create(ctx context.Context, params *SyncTaskTypeVersionCreateParams) (*SyncTaskTypeVersionResponse, error)
	Update(ctx context.Context, syncTaskTypeID, i18nLangID string, params *SyncTaskTypeVersionUpdateParams) (*SyncTaskTypeVersionResponse, error)
	Delete(ctx context.Context, syncTaskTypeID, i18nLangID string) (*ErrorResponse, error)
}

// SyncTaskStatusesClient manages /sync_task_statuses.
type SyncTaskStatusesClient interface {
	All(ctx context.Context, params *SyncTaskStatusListParams) (*SyncTaskStatusListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*SyncTaskStatusResponse, error)
	Create(ctx context.Context, params *SyncTaskStatusCreateParams) (*SyncTaskStatusResponse, error)
	Update(ctx context.Context, id string, params *SyncTaskStatusUpdateParams) (*SyncTaskStatusResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// SyncTaskStatusVersionsClient manages /sync_task_status_versions. Entries
// are addressed by (sync task status id, language id).
type SyncTaskStatusVersionsClient interface {
	All(ctx context.Context, params *SyncTaskStatusVersionListParams) (*SyncTaskStatusVersionListResponse, error)
	Get(ctx context.Context, syncTaskStatusID, i18nLangID string, params *GetParams) (*SyncTaskStatusVersionResponse, error)
	Create(ctx context.Context, params *SyncTaskStatusVersionCreateParams) (*SyncTaskStatusVersionResponse, error)
	Update(ctx context.Context, syncTaskStatusID, i18nLangID string, params *SyncTaskStatusVersionUpdateParams) (*SyncTaskStatusVersionResponse, error)
	Delete(ctx context.Context, syncTaskStatusID, i18nLangID string) (*ErrorResponse, error)
}

// SyncTasksClient manages /sync_tasks.
type SyncTasksClient interface {
	All(ctx context.Context, params *SyncTaskListParams) (*SyncTaskListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*SyncTaskResponse, error)
	Create(ctx context.Context, params *SyncTaskCreateParams) (*SyncTaskResponse, error)
	Update(ctx context.Context, id string, params *SyncTaskUpdateParams) (*SyncTaskResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// SyncItemsClient manages /sync_items.
type SyncItemsClient interface {
	All(ctx context.Context, params *SyncItemListParams) (*SyncItemListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*SyncItemResponse, error)
	Create(ctx context.Context, params *SyncItemCreateParams) (*SyncItemResponse, error)
	Update(ctx context.Context, id string, params *SyncItemUpdateParams) (*SyncItemResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// UsersClient manages /users.
type UsersClient interface {
	All(ctx context.Context, params *UserListParams) (*UserListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*UserResponse, error)
	Create(ctx context.Context, params *UserCreateParams) (*UserResponse, error)
	Update(ctx context.Context, id string, params *UserUpdateParams) (*UserResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// UserHasProjectsClient manages /user_has_projects. Entries are addressed by
// (user id, project id).
type UserHasProjectsClient interface {
	All(ctx context.Context, params *UserHasProjectListParams) (*UserHasProjectListResponse, error)
	Get(ctx context.Context, userID, projectID string, params *GetParams) (*UserHasProjectResponse, error)
	Create(ctx context.Context, params *UserHasProjectCreateParams) (*UserHasProjectResponse, error)
	Update(ctx context.Context, userID, projectID string, params *UserHasProjectUpdateParams) (*UserHasProjectResponse, error)
	Delete(ctx context.Context, userID, projectID string) (*ErrorResponse, error)
}

// WidgetsClient manages /widgets.
type WidgetsClient interface {
	All(ctx context.Context, params *WidgetListParams) (*WidgetListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*WidgetResponse, error)
	Create(ctx context.Context, params *WidgetCreateParams) (*WidgetResponse, error)
	Update(ctx context.Context, id string, params *WidgetUpdateParams) (*WidgetResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// WidgetPresetsClient manages /widget_presets.
type WidgetPresetsClient interface {
	All(ctx context.Context, params *WidgetPresetListParams) (*WidgetPresetListResponse, error)
	Get(ctx context.Context, id string, params *GetParams) (*WidgetPresetResponse, error)
	Create(ctx context.Context, params *WidgetPresetCreateParams) (*WidgetPresetResponse, error)
	Update(ctx context.Context, id string, params *WidgetPresetUpdateParams) (*WidgetPresetResponse, error)
	Delete(ctx context.Context, id string) (*ErrorResponse, error)
}

// DataStreamClients provides access to data stream resource clients.
type DataStreamClients interface {
	DataStreamDecoders() DataStreamDecodersClient
	DataStreams() DataStreamsClient
	DataStreamFields() DataStreamFieldsClient
	DataStreamPresets() DataStreamPresetsClient
	DataStreamPresetFields() DataStreamPresetFieldsClient
}

// SearchClients provides access to search configuration resource clients.
type SearchClients interface {
	SearchEngines() SearchEnginesClient
	SearchUseCases() SearchUseCasesClient
	SearchUseCaseFields() SearchUseCaseFieldsClient
	SearchUseCasePresets() SearchUseCasePresetsClient
	SearchUseCasePresetFields() SearchUseCasePresetFieldsClient
	Widgets() WidgetsClient
	WidgetPresets() WidgetPresetsClient
}

// SyncClients provides access to synchronisation resource clients.
type SyncClients interface {
	SyncTasks() SyncTasksClient
	SyncTaskTypes() SyncTaskTypesClient
	SyncTaskTypeVersions() SyncTaskTypeVersionsClient
	SyncTaskStatuses() SyncTaskStatusesClient
	SyncTaskStatusVersions() SyncTaskStatusVersionsClient
	SyncItems() SyncItemsClient
}

// AccountClients provides access to tenancy resource clients.
type AccountClients interface {
	Projects() ProjectsClient
	Users() UsersClient
	UserHasProjects() UserHasProjectsClient
	I18nLangs() I18nLangsClient
}

// Client is the emsearch API client. It is safe for concurrent use.
type Client interface {
	DataStreamClients
	SearchClients
	SyncClients
	AccountClients

	// BaseURL returns the API root every path is resolved against.
	BaseURL() string
	// Headers returns a copy of the extra headers sent with every request.
	Headers() map[string]string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Configuration is constructor-level only: the client reads no files and
// no environment variables.
type Config struct {
	// BearerToken is sent as "Authorization: Bearer <token>" on every request. Required.
	BearerToken string
	// BaseURL is the API root. Defaults to the production host when empty.
	// emsearchclient.New trims a trailing slash and adds "https://" when no
	// scheme is present.
	BaseURL string
	// Headers are extra headers added to every request.
	Headers map[string]string

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPClient replaces the underlying *http.Client. Timeouts and
	// transport tuning belong there.
	HTTPClient *http.Client
	// Metrics, when set, records per-endpoint request counts and latency.
	Metrics *MetricsCollector
}
