package plan

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Listing bounds
const (
	DefaultMostViewedLimit = 10
	MaxMostViewedLimit     = 100
)

// Log messages
const (
	LogMsgPlanGenerated = "Plan generated"
	LogMsgPlanSwapped   = "Plan recipe swapped"
	LogMsgPlanRescaled  = "Plan rescaled"
	LogMsgPlanSaved     = "Plan saved"
	LogMsgPlanDeleted   = "Plan deleted"
)
