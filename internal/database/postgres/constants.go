package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - Plan Operations
const (
	ErrMsgFailedToInsertPlan     = "failed to insert plan"
	ErrMsgFailedToGetPlan        = "failed to get plan"
	ErrMsgFailedToDeletePlan     = "failed to delete plan"
	ErrMsgFailedToIncrementViews = "failed to increment views"
	ErrMsgFailedToListPlans      = "failed to list plans"
	ErrMsgFailedToScanPlan       = "failed to scan plan"
	ErrMsgFailedToIteratePlans   = "failed to iterate plans"
	ErrMsgFailedToLookupPlanIDs  = "failed to look up plan ids"
	ErrMsgFailedToScanPlanID     = "failed to scan plan id"
	ErrMsgFailedToIteratePlanIDs = "failed to iterate plan ids"
)
