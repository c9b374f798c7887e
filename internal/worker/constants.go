package worker

import "time"

// Log messages
const (
	LogMsgWorkerJobFailed      = "Worker job failed"
	LogMsgOrphanSweepCompleted = "Orphaned plan document sweep completed"
	LogMsgOrphanDeleteFailed   = "Failed to delete orphaned plan document"
)

const (
	// DefaultJobTimeout bounds a single job run
	DefaultJobTimeout = 5 * time.Minute

	// sweepBatchSize caps the ids sent to the metadata store per lookup
	sweepBatchSize = 500
)
