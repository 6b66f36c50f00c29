package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// UnlimitedRetries 失败后无限重试
const UnlimitedRetries = -1

// Runner 运行任务, 失败时整体退避重试.
// every > 0 时成功后间隔 every 再次运行, 直到 ctx 结束; every == 0 时只成功运行一次.
type Runner struct {
	task       Task
	backoff    time.Duration
	maxRetries int
	every      time.Duration
	after      func(d time.Duration) <-chan time.Time
}

type RunnerOption func(r *Runner)

func WithBackoff(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.backoff = d
	}
}

// WithMaxRetries n < 0 表示无限重试
func WithMaxRetries(n int) RunnerOption {
	return func(r *Runner) {
		r.maxRetries = n
	}
}

func WithEvery(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.every = d
	}
}

func NewRunner(task Task, opts ...RunnerOption) *Runner {
	r := &Runner{
		task:       task,
		backoff:    time.Minute,
		maxRetries: 3,
		after:      time.After,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) Run(ctx context.Context) error {
	failures := 0
	for {
		slog.Info("task start", "task", r.task.Name(), "attempt", failures+1)
		err := r.task.Run(ctx)
		if err == nil {
			failures = 0
			if r.every <= 0 {
				return nil
			}
			if err := r.wait(ctx, r.every); err != nil {
				return nil
			}
			continue
		}

		if ctx.Err() != nil {
			return fmt.Errorf("task %s: %w", r.task.Name(), err)
		}
		failures++
		if r.maxRetries >= 0 && failures > r.maxRetries {
			slog.Error("task failed, retries exhausted", "task", r.task.Name(), "retries", r.maxRetries, "error", err)
			return fmt.Errorf("task %s failed after %d retries: %w", r.task.Name(), r.maxRetries, err)
		}
		slog.Error("task failed, retry later", "task", r.task.Name(), "backoff", r.backoff, "error", err)
		if werr := r.wait(ctx, r.backoff); werr != nil {
			return fmt.Errorf("task %s: %w", r.task.Name(), err)
		}
	}
}

func (r *Runner) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-r.after(d):
		return nil
	}
}
