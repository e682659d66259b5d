// Package sim models the studio's simulated asynchronous work: batch
// rendering and cloud upload are timer-driven status transitions with no
// failure path. The delayed action is cancellable so that a real renderer
// can be substituted later without changing call sites.
package sim

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Schedule constants shared by the TUI ticks and the CLI runner.
const (
	// BatchItemInterval is the per-index delay before a batch item
	// becomes ready: item i transitions at BatchItemInterval × i.
	BatchItemInterval = 800 * time.Millisecond

	// CloudQueueDelay is how long a cloud send stays "queued".
	CloudQueueDelay = 1500 * time.Millisecond

	// PulseDuration is how long the preview's play pulse lasts.
	PulseDuration = 650 * time.Millisecond
)

// Status is the display state of a simulated task.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusQueued     Status = "queued"
	StatusReady      Status = "ready"
)

// String returns the string representation of the status.
func (s Status) String() string { return string(s) }

// BatchItem is one line in the batch render panel.
type BatchItem struct {
	Index  int
	Label  string
	Status Status
}

// NewBatch returns n items, all in the processing state.
func NewBatch(n int) []BatchItem {
	items := make([]BatchItem, n)
	for i := range items {
		items[i] = BatchItem{
			Index:  i,
			Label:  fmt.Sprintf("Clip %d", i+1),
			Status: StatusProcessing,
		}
	}
	return items
}

// BatchDelay returns the delay before item i becomes ready.
func BatchDelay(i int) time.Duration {
	return time.Duration(i) * BatchItemInterval
}

// Task is a cancellable delayed action.
type Task struct {
	timer *time.Timer
	once  sync.Once
}

// After schedules fn to run once after d. The returned Task can cancel
// the action before it fires; cancelling after is a no-op.
func After(d time.Duration, fn func()) *Task {
	return &Task{timer: time.AfterFunc(d, fn)}
}

// Cancel stops the task if it has not fired yet.
func (t *Task) Cancel() {
	t.once.Do(func() { t.timer.Stop() })
}

// Runner executes simulated work with real timers. Callbacks run on timer
// goroutines; callers that need single-threaded delivery should forward
// into their own loop.
type Runner struct {
	mu    sync.Mutex
	tasks []*Task
}

// StartBatch transitions n items to ready, item i after BatchDelay(i).
// Each transition invokes fn with the item index. The context cancels any
// transitions that have not fired yet.
func (r *Runner) StartBatch(ctx context.Context, n int, fn func(index int)) {
	for i := 0; i < n; i++ {
		i := i
		task := After(BatchDelay(i), func() {
			if ctx.Err() != nil {
				return
			}
			fn(i)
		})
		r.track(task)
	}
}

// SendToCloud reports the queued state immediately and the ready state
// after CloudQueueDelay.
func (r *Runner) SendToCloud(ctx context.Context, fn func(status Status)) {
	fn(StatusQueued)
	task := After(CloudQueueDelay, func() {
		if ctx.Err() != nil {
			return
		}
		fn(StatusReady)
	})
	r.track(task)
}

// Stop cancels every pending task.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		t.Cancel()
	}
	r.tasks = nil
}

func (r *Runner) track(t *Task) {
	r.mu.Lock()
	r.tasks = append(r.tasks, t)
	r.mu.Unlock()
}
