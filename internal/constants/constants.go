package constants

import (
	"net/http"
	"time"
)

// API defaults.
const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://api.emsearch.io"

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "emsearch-client-go/1.0"

	// ContentTypeForm is the content type of create and update bodies.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeJSON is the accepted response content type.
	ContentTypeJSON = "application/json"
)

// Header names.
const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
)

// Expected status codes per operation kind.
const (
	// StatusRead is expected from list, get and search calls.
	StatusRead = http.StatusOK

	// StatusCreated is expected from create calls.
	StatusCreated = http.StatusCreated

	// StatusUpdated is expected from most update calls.
	StatusUpdated = http.StatusOK

	// StatusUpdatedCreated is expected from the update calls of the
	// version and membership resources, which answer 201.
	StatusUpdatedCreated = http.StatusCreated

	// StatusDeleted is expected from delete calls.
	StatusDeleted = http.StatusNoContent
)

// API paths. Placeholders in braces are replaced by path-escaped arguments;
// composite keys share one path segment separated by a comma.
const (
	APIPathDataStreamDecoders = "/data_stream_decoders"
	APIPathDataStreamDecoder  = "/data_stream_decoders/{id}"

	APIPathDataStreams = "/data_streams"
	APIPathDataStream  = "/data_streams/{id}"

	APIPathDataStreamFields = "/data_stream_fields"
	APIPathDataStreamField  = "/data_stream_fields/{id}"

	APIPathDataStreamPresets = "/data_stream_presets"
	APIPathDataStreamPreset  = "/data_stream_presets/{id}"

	APIPathDataStreamPresetFields = "/data_stream_preset_fields"
	APIPathDataStreamPresetField  = "/data_stream_preset_fields/{id}"

	APIPathSearchEngines = "/search_engines"
	APIPathSearchEngine  = "/search_engines/{id}"

	APIPathProjects = "/projects"
	APIPathProject  = "/projects/{id}"

	APIPathSearchUseCases      = "/search_use_cases"
	APIPathSearchUseCase       = "/search_use_cases/{id}"
	APIPathSearchUseCaseSearch = "/search_use_cases/{id}/search"

	APIPathSearchUseCaseFields = "/search_use_case_fields"
	APIPathSearchUseCaseField  = "/search_use_case_fields/{search_use_case_id},{data_stream_field_id}"

	APIPathSearchUseCasePresets = "/search_use_case_presets"
	APIPathSearchUseCasePreset  = "/search_use_case_presets/{id}"

	APIPathSearchUseCasePresetFields = "/search_use_case_preset_fields"
	APIPathSearchUseCasePresetField  = "/search_use_case_preset_fields/{search_use_case_preset_id},{data_stream_preset_field_id}"

	APIPathI18nLangs = "/i18n_langs"
	APIPathI18nLang  = "/i18n_langs/{id}"

	APIPathSyncTaskTypes = "/sync_task_types"
	APIPathSyncTaskType  = "/sync_task_types/{id}"

	APIPathSyncTaskTypeVersions = "/sync_task_type_versions"
	APIPathSyncTaskTypeVersion  = "/sync_task_type_versions/{sync_task_type_id},{i18n_lang_id}"

	APIPathSyncTaskStatuses = "/sync_task_statuses"
	APIPathSyncTaskStatus   = "/sync_task_statuses/{id}"

	APIPathSyncTaskStatusVersions = "/sync_task_status_versions"
	APIPathSyncTaskStatusVersion  = "/sync_task_status_versions/{sync_task_status_id},{i18n_lang_id}"

	APIPathSyncTasks = "/sync_tasks"
	APIPathSyncTask  = "/sync_tasks/{id}"

	APIPathSyncItems = "/sync_items"
	APIPathSyncItem  = "/sync_items/{id}"

	APIPathUsers = "/users"
	APIPathUser  = "/users/{id}"

	APIPathUserHasProjects = "/user_has_projects"
	APIPathUserHasProject  = "/user_has_projects/{user_id},{project_id}"

	APIPathWidgets = "/widgets"
	APIPathWidget  = "/widgets/{id}"

	APIPathWidgetPresets = "/widget_presets"
	APIPathWidgetPreset  = "/widget_presets/{id}"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// CLI defaults.
const (
	// DefaultCommandTimeout bounds a single CLI command.
	DefaultCommandTimeout = 30 * time.Second

	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 15

	// JSONIndentSize is the indentation of JSON and YAML output.
	JSONIndentSize = 2

	// ConfigDirName is the directory under $HOME holding the CLI config.
	ConfigDirName = ".emsearch"

	// ConfigFileName is the CLI config file name, without extension.
	ConfigFileName = "config"

	// EnvPrefix prefixes the environment variables read by the CLI.
	EnvPrefix = "EMSEARCH"
)

// Display values.
const (
	BooleanTrue  = "true"
	BooleanFalse = "false"
	NotAvailable = "N/A"
	Masked       = "***"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)
