package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/testing/leaktest"
	"github.com/osse101/FactoryPlanner_Go/internal/worker"
)

type countingJob struct {
	runs int32
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(&j.runs, 1)
	return nil
}

type fullQueue struct {
	attempts int32
}

func (q *fullQueue) TryEnqueue(worker.Job) bool {
	atomic.AddInt32(&q.attempts, 1)
	return false
}

func TestScheduler(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(1, 10, time.Second)
		pool.Start()
		defer pool.Stop()

		sched := New(pool)
		defer sched.Stop()

		job := &countingJob{}
		sched.Schedule("count", 10*time.Millisecond, job)

		require.Eventually(t, func() bool {
			return atomic.LoadInt32(&job.runs) >= 2
		}, time.Second, 5*time.Millisecond)
	})
}

func TestScheduler_SkipsWhenQueueFull(t *testing.T) {
	queue := &fullQueue{}
	sched := New(queue)

	sched.Schedule("never-runs", 5*time.Millisecond, &countingJob{})

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&queue.attempts) >= 2
	}, time.Second, 5*time.Millisecond)

	sched.Stop()
	sched.Stop()
}

func TestScheduler_DisabledInterval(t *testing.T) {
	queue := &fullQueue{}
	sched := New(queue)

	sched.Schedule("disabled", 0, &countingJob{})
	time.Sleep(20 * time.Millisecond)
	sched.Stop()

	assert.Equal(t, int32(0), atomic.LoadInt32(&queue.attempts))
}
