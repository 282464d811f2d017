// Package delayed запускает отложенные задачи, которые можно отменить до срабатывания.
// Используется для имитации сетевой задержки (авторизация, оформление заказа).
package delayed

import (
	"context"
	"sync"
	"time"
)

// Func — тело задачи. Контекст отменяется вместе с задачей.
type Func func(ctx context.Context) error

// Task — запущенная отложенная задача
type Task struct {
	done   chan struct{}
	cancel context.CancelFunc
	mu     sync.Mutex
	err    error
}

type options struct {
	onComplete func(error)
}

type Option func(*options)

// OnComplete задаёт колбэк, вызываемый после завершения задачи (в том числе отменённой).
func OnComplete(f func(err error)) Option {
	return func(o *options) { o.onComplete = f }
}

// Run запускает fn через delay. Если ctx отменён раньше, fn не вызывается,
// а Err возвращает ошибку контекста.
func Run(ctx context.Context, delay time.Duration, fn Func, opts ...Option) *Task {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer cancel()

		err := t.run(ctx, delay, fn)
		t.mu.Lock()
		t.err = err
		t.mu.Unlock()
		close(t.done)

		if o.onComplete != nil {
			o.onComplete(err)
		}
	}()

	return t
}

func (t *Task) run(ctx context.Context, delay time.Duration, fn Func) error {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	// отмена могла случиться одновременно со срабатыванием таймера
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}

// Done закрывается после завершения задачи.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Cancel отменяет задачу. Если fn уже выполняется, она получит отменённый контекст.
func (t *Task) Cancel() {
	t.cancel()
}

// Err возвращает результат задачи; до завершения nil.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// Wait ждёт завершения задачи или отмены ctx ожидающей стороны.
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}
