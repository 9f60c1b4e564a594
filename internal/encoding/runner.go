package encoding

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"deo/internal/logging"
	"deo/internal/services"
)

const stageName = "encoding"

const lockRetryDelay = 250 * time.Millisecond

// Status is the result of one job within a run.
type Status string

const (
	StatusEncoded Status = "encoded"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome records what happened to one job.
type Outcome struct {
	Job    Job
	Status Status
	Err    error
}

// Report lists one Outcome per dispatched job in dispatch order.
type Report struct {
	Outcomes []Outcome
}

// Count returns the number of outcomes with status.
func (r Report) Count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Failed reports whether any job failed.
func (r Report) Failed() bool { return r.Count(StatusFailed) > 0 }

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	// LockPath is the run lock file; it is created if missing.
	LockPath string
	// LockTimeout bounds how long Run waits for a busy lock. Zero tries once.
	LockTimeout time.Duration
	Overwrite   bool
	Logger      *slog.Logger
}

// Runner dispatches jobs to an Encoder one at a time.
type Runner struct {
	encoder     Encoder
	lockPath    string
	lockTimeout time.Duration
	overwrite   bool
	logger      *slog.Logger
}

// NewRunner constructs a runner around encoder.
func NewRunner(encoder Encoder, opts RunnerOptions) *Runner {
	return &Runner{
		encoder:     encoder,
		lockPath:    opts.LockPath,
		lockTimeout: opts.LockTimeout,
		overwrite:   opts.Overwrite,
		logger:      logging.NewComponentLogger(opts.Logger, stageName),
	}
}

// Run holds the run lock while dispatching jobs sequentially. Individual job
// failures are recorded in the report; the returned error covers lock
// acquisition and cancellation only. On cancellation the report holds the
// outcomes recorded so far.
func (r *Runner) Run(ctx context.Context, jobs []Job) (Report, error) {
	ctx = services.WithStage(ctx, stageName)
	logger := logging.WithContext(ctx, r.logger)

	unlock, err := r.acquire(ctx)
	if err != nil {
		return Report{}, err
	}
	defer unlock()

	report := Report{Outcomes: make([]Outcome, 0, len(jobs))}
	for idx, job := range jobs {
		if err := ctx.Err(); err != nil {
			logger.Info("encode run cancelled",
				logging.Int("completed", idx),
				logging.Int("remaining", len(jobs)-idx),
			)
			return report, err
		}

		jobLogger := logger.With(
			logging.String(logging.FieldSession, job.Session.String()),
			logging.String("job", job.Label()),
			logging.Int("job_index", idx+1),
			logging.Int("job_count", len(jobs)),
		)

		if !r.overwrite {
			if _, err := os.Stat(job.Output); err == nil {
				jobLogger.Info("output exists; skipping", logging.String("output", job.Output))
				report.Outcomes = append(report.Outcomes, Outcome{Job: job, Status: StatusSkipped})
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				report.Outcomes = append(report.Outcomes, Outcome{Job: job, Status: StatusFailed, Err: fmt.Errorf("check output %s: %w", job.Output, err)})
				continue
			}
		}

		if err := r.encoder.Encode(ctx, job); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			logging.WarnWithContext(jobLogger, "encode failed", "encode_job_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "inspect the input file and profile"),
				logging.String(logging.FieldImpact, "output was not produced; remaining jobs continue"),
			)
			report.Outcomes = append(report.Outcomes, Outcome{Job: job, Status: StatusFailed, Err: err})
			continue
		}
		jobLogger.Debug("job dispatched", logging.String("output", job.Output))
		report.Outcomes = append(report.Outcomes, Outcome{Job: job, Status: StatusEncoded})
	}

	logger.Info("encode run finished",
		logging.Int("encoded", report.Count(StatusEncoded)),
		logging.Int("skipped", report.Count(StatusSkipped)),
		logging.Int("failed", report.Count(StatusFailed)),
	)
	return report, nil
}

func (r *Runner) acquire(ctx context.Context) (func(), error) {
	if r.lockPath == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(r.lockPath), 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, stageName, "create lock directory", r.lockPath, err)
	}

	lock := flock.New(r.lockPath)
	var (
		ok  bool
		err error
	)
	if r.lockTimeout > 0 {
		lockCtx, cancel := context.WithTimeout(ctx, r.lockTimeout)
		defer cancel()
		ok, err = lock.TryLockContext(lockCtx, lockRetryDelay)
		if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			ok, err = false, nil
		}
	} else {
		ok, err = lock.TryLock()
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, services.Wrap(services.ErrConfiguration, stageName, "acquire lock", r.lockPath, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrTimeout, stageName, "acquire lock", fmt.Sprintf("another encode run holds %s", r.lockPath), nil)
	}
	return func() {
		if err := lock.Unlock(); err != nil {
			r.logger.Warn("failed to release encode lock", logging.String("lock", r.lockPath), logging.Error(err))
		}
	}, nil
}
