package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/google/uuid"
)

// ErrTaskNotFound returned for an unknown task id
var ErrTaskNotFound = errors.New("task not found")

// TaskStatus is the lifecycle state of a background task
type TaskStatus string

const (
	TaskRunning  TaskStatus = "running"
	TaskDone     TaskStatus = "done"
	TaskFailed   TaskStatus = "failed"
	TaskCanceled TaskStatus = "canceled"
)

const maxFinishedTasks = 50

// Task is an observable background run of one content kind
type Task struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Status     TaskStatus `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Error      string     `json:"error,omitempty"`
	Result     any        `json:"result,omitempty"`

	cancel context.CancelFunc
}

// TaskFunc is the work of a task, the returned value becomes the task result
type TaskFunc func(ctx context.Context) (any, error)

// TaskRunner runs tasks in background goroutines, one per kind at a time
type TaskRunner struct {
	guard  *Guard
	mu     sync.Mutex
	tasks  map[string]*Task
	active map[string]string // kind -> id of the running task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTaskRunner makes a runner sharing the in-flight guard with direct callers
func NewTaskRunner(guard *Guard) *TaskRunner {
	ctx, cancel := context.WithCancel(context.Background())
	return &TaskRunner{guard: guard, tasks: map[string]*Task{}, active: map[string]string{}, ctx: ctx, cancel: cancel}
}

// Submit starts fn as a task of the given kind. If a run of this kind is already in flight nothing
// is started and the running task is returned with started=false, or nil if the run was not started
// by this runner.
func (r *TaskRunner) Submit(kind string, fn TaskFunc) (task *Task, started bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	release, ok := r.guard.TryAcquire(kind)
	if !ok {
		if id, found := r.active[kind]; found {
			t := r.copyOf(r.tasks[id])
			return &t, false
		}
		return nil, false
	}

	ctx, cancel := context.WithCancel(r.ctx)
	t := &Task{ID: uuid.NewString(), Kind: kind, Status: TaskRunning, StartedAt: time.Now(), cancel: cancel}
	r.tasks[t.ID] = t
	r.active[kind] = t.ID
	r.prune()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		log.Printf("[INFO] task %s (%s) started", t.ID, kind)
		result, err := fn(ctx)
		r.finish(t, result, err, ctx.Err(), release)
	}()

	res := r.copyOf(t)
	return &res, true
}

// Get returns a snapshot of a task
func (r *TaskRunner) Get(id string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	res := r.copyOf(t)
	return &res, nil
}

// Cancel requests cancellation of a running task, finished tasks are left as they are
func (r *TaskRunner) Cancel(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if t.Status == TaskRunning {
		log.Printf("[INFO] cancel task %s (%s)", t.ID, t.Kind)
		t.cancel()
	}
	return nil
}

// Stop cancels all running tasks and waits for them to finish
func (r *TaskRunner) Stop() {
	r.cancel()
	r.wg.Wait()
}

// finish records the outcome and releases the kind in one step, so a new submit sees either
// the running task or a free kind
func (r *TaskRunner) finish(t *Task, result any, err, ctxErr error, release func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer release()
	now := time.Now()
	t.FinishedAt = &now
	t.Result = result
	switch {
	case ctxErr != nil:
		t.Status = TaskCanceled
		t.Error = ctxErr.Error()
	case err != nil:
		t.Status = TaskFailed
		t.Error = err.Error()
	default:
		t.Status = TaskDone
	}
	if r.active[t.Kind] == t.ID {
		delete(r.active, t.Kind)
	}
	log.Printf("[INFO] task %s (%s) %s in %v", t.ID, t.Kind, t.Status, now.Sub(t.StartedAt).Round(time.Millisecond))
}

// prune drops the oldest finished tasks above the retention limit, must be called under lock
func (r *TaskRunner) prune() {
	finished := make([]*Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if t.Status != TaskRunning {
			finished = append(finished, t)
		}
	}
	if len(finished) <= maxFinishedTasks {
		return
	}
	sort.Slice(finished, func(i, j int) bool { return finished[i].StartedAt.Before(finished[j].StartedAt) })
	for _, t := range finished[:len(finished)-maxFinishedTasks] {
		delete(r.tasks, t.ID)
	}
}

func (r *TaskRunner) copyOf(t *Task) Task {
	res := *t
	res.cancel = nil
	if t.FinishedAt != nil {
		finished := *t.FinishedAt
		res.FinishedAt = &finished
	}
	return res
}
