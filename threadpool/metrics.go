package threadpool

import (
	"strconv"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pools report queue depth and completed-task counts to the process-wide
// prometheus registry, labelled by a per-instance sequence number so that
// benchmarks spinning up several pools don't collide on one series.
var (
	poolSeq int64

	queueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "nanocv_threadpool_queue_depth",
		Help: "Number of tasks currently queued on a pool.",
	}, []string{"pool"})

	tasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nanocv_threadpool_tasks_completed_total",
		Help: "Total tasks a pool has finished executing.",
	}, []string{"pool"})
)

func nextPoolID() string {
	return strconv.FormatInt(atomic.AddInt64(&poolSeq, 1), 10)
}
