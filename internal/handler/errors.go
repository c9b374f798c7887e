package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"

	// Catalog error messages
	ErrMsgRecipeNotFound = "Recipe not found"
)

// Success messages for API responses
const (
	MsgPlanDeletedSuccess = "Plan deleted successfully"
)

// Operation names used in logs
const (
	OpGeneratePlan = "Generate plan"
	OpSwapRecipe   = "Swap recipe"
	OpRescalePlan  = "Rescale plan"
	OpSummarize    = "Summarize plan"
	OpSavePlan     = "Save plan"
	OpGetPlan      = "Get plan"
	OpDeletePlan   = "Delete plan"
	OpMostViewed   = "List most viewed plans"
)
