package delayed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompletes(t *testing.T) {
	var calls atomic.Int32
	completed := make(chan error, 1)

	task := Run(context.Background(), 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, OnComplete(func(err error) { completed <- err }))

	require.NoError(t, task.Wait(context.Background()))
	assert.Equal(t, int32(1), calls.Load())
	assert.NoError(t, <-completed)
}

func TestRunReturnsFuncError(t *testing.T) {
	boom := errors.New("boom")
	task := Run(context.Background(), 0, func(context.Context) error { return boom })

	assert.ErrorIs(t, task.Wait(context.Background()), boom)
	assert.ErrorIs(t, task.Err(), boom)
}

func TestCancelBeforeDelaySkipsFunc(t *testing.T) {
	var calls atomic.Int32
	task := Run(context.Background(), time.Hour, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	task.Cancel()
	<-task.Done()

	assert.ErrorIs(t, task.Err(), context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestParentContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	completed := make(chan error, 1)

	task := Run(ctx, time.Hour, func(context.Context) error {
		t.Error("must not run")
		return nil
	}, OnComplete(func(err error) { completed <- err }))

	cancel()
	assert.ErrorIs(t, <-completed, context.Canceled)
	assert.ErrorIs(t, task.Wait(context.Background()), context.Canceled)
}

func TestWaitRespectsCallerContext(t *testing.T) {
	task := Run(context.Background(), time.Hour, func(context.Context) error { return nil })
	defer task.Cancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, task.Wait(ctx), context.DeadlineExceeded)
	assert.NoError(t, task.Err(), "task is still pending")
}
