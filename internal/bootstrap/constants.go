package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup, including the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingPlanner     = "Starting factory planner"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Catalog and Stores
// =============================================================================

const (
	LogMsgCatalogLoaded      = "Recipe catalog loaded"
	LogMsgBlobStoreEnabled   = "Plan documents stored in object storage"
	LogMsgBlobStoreInMemory  = "Object storage not configured, plan documents kept in memory"
	ErrMsgFailedLoadCatalog  = "failed to load recipe catalog"
	ErrMsgFailedCreateBlobFS = "failed to create plan document store"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgStoppingWorkers      = "Stopping background workers"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	LogMsgOrphanSweepScheduled = "Orphaned plan document sweep scheduled"
	LogMsgOrphanSweepDisabled  = "Orphaned plan document sweep disabled"
	JobNameOrphanSweep         = "orphan-sweep"

	backgroundWorkers   = 1
	backgroundQueueSize = 4
)
