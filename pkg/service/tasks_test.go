package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitStatus(t *testing.T, r *TaskRunner, id string, want TaskStatus) *Task {
	t.Helper()
	require.Eventually(t, func() bool {
		task, err := r.Get(id)
		return err == nil && task.Status == want
	}, time.Second, 5*time.Millisecond)
	task, err := r.Get(id)
	require.NoError(t, err)
	return task
}

func TestTaskRunner_Submit(t *testing.T) {
	r := NewTaskRunner(NewGuard())
	defer r.Stop()

	block := make(chan struct{})
	task, started := r.Submit(KindNews, func(ctx context.Context) (any, error) {
		<-block
		return 3, nil
	})
	require.True(t, started)
	require.NotNil(t, task)
	assert.Equal(t, TaskRunning, task.Status)
	assert.Equal(t, KindNews, task.Kind)
	assert.Len(t, task.ID, 36)

	dup, started := r.Submit(KindNews, func(ctx context.Context) (any, error) {
		t.Fatal("must not run")
		return nil, nil
	})
	assert.False(t, started, "second trigger while running is a no-op")
	require.NotNil(t, dup)
	assert.Equal(t, task.ID, dup.ID)

	close(block)
	done := waitStatus(t, r, task.ID, TaskDone)
	assert.Equal(t, 3, done.Result)
	require.NotNil(t, done.FinishedAt)
	assert.Empty(t, done.Error)

	next, started := r.Submit(KindNews, func(ctx context.Context) (any, error) { return nil, nil })
	assert.True(t, started, "kind is free after the task finished")
	assert.NotEqual(t, task.ID, next.ID)
}

func TestTaskRunner_Failed(t *testing.T) {
	r := NewTaskRunner(NewGuard())
	defer r.Stop()

	task, started := r.Submit(KindCleanup, func(ctx context.Context) (any, error) { return nil, errors.New("boom") })
	require.True(t, started)
	failed := waitStatus(t, r, task.ID, TaskFailed)
	assert.Equal(t, "boom", failed.Error)
}

func TestTaskRunner_Cancel(t *testing.T) {
	r := NewTaskRunner(NewGuard())
	defer r.Stop()

	task, started := r.Submit(KindHistorical, func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	require.True(t, started)
	require.NoError(t, r.Cancel(task.ID))
	canceled := waitStatus(t, r, task.ID, TaskCanceled)
	assert.Equal(t, context.Canceled.Error(), canceled.Error)

	require.NoError(t, r.Cancel(task.ID), "cancel of a finished task is a no-op")
	require.ErrorIs(t, r.Cancel("nope"), ErrTaskNotFound)
	_, err := r.Get("nope")
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskRunner_GuardSharedWithDirectCallers(t *testing.T) {
	g := NewGuard()
	r := NewTaskRunner(g)
	defer r.Stop()

	release, ok := g.TryAcquire(KindNews)
	require.True(t, ok)
	task, started := r.Submit(KindNews, func(ctx context.Context) (any, error) { return nil, nil })
	assert.False(t, started)
	assert.Nil(t, task, "run owned by a direct caller has no task")
	release()
}

func TestTaskRunner_StopCancelsRunning(t *testing.T) {
	r := NewTaskRunner(NewGuard())
	task, _ := r.Submit(KindNews, func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, nil
	})
	r.Stop()
	got, err := r.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, TaskCanceled, got.Status)
}

func TestTaskRunner_Prune(t *testing.T) {
	r := NewTaskRunner(NewGuard())
	defer r.Stop()

	var first string
	for i := 0; i < maxFinishedTasks+5; i++ {
		task, started := r.Submit(KindCleanup, func(ctx context.Context) (any, error) { return nil, nil })
		require.True(t, started)
		if i == 0 {
			first = task.ID
		}
		waitStatus(t, r, task.ID, TaskDone)
	}
	_, err := r.Get(first)
	require.ErrorIs(t, err, ErrTaskNotFound, "oldest finished task pruned")
}
