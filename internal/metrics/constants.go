package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameSecurityEvents       = "http_security_events_total"
)

// Planner metric names
const (
	MetricNamePlannerOperations       = "planner_operations_total"
	MetricNamePlannerOperationLatency = "planner_operation_duration_seconds"
	MetricNamePlanNodes               = "planner_plan_nodes"
)

// Plan storage metric names
const (
	MetricNamePlanCacheLookups   = "plan_cache_lookups_total"
	MetricNamePlanStoreOperation = "plan_store_operations_total"
	MetricNamePlanDocumentsSwept = "plan_documents_swept_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextSecurityEvents       = "Requests rejected by the security middleware by event"
	HelpTextPlannerOperations    = "Total number of planner operations by outcome"
	HelpTextPlannerOperationTime = "Planner operation latency in seconds"
	HelpTextPlanNodes            = "Number of nodes in plans produced by the planner"
	HelpTextPlanCacheLookups     = "Plan document cache lookups by result"
	HelpTextPlanStoreOperations  = "Saved plan store operations by outcome"
	HelpTextPlanDocumentsSwept   = "Orphaned plan documents removed by the sweeper"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
	LabelEvent     = "event"
)

// Operation label values
const (
	OperationGenerate = "generate"
	OperationSwap     = "swap"
	OperationRescale  = "rescale"
	OperationSummary  = "summary"
	OperationSave     = "save"
	OperationGet      = "get"
	OperationDelete   = "delete"
	OperationList     = "list"
	OperationSweep    = "sweep"
)

// Security event label values
const (
	EventAuthFailed  = "auth_failed"
	EventRateLimited = "rate_limited"
)

// Outcome and result label values
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	ResultHit      = "hit"
	ResultMiss     = "miss"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets    = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
	PlannerLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5}
	PlanNodeBuckets       = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000}
)
