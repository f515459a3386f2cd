package runner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gocorrect/internal/logging"
	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/correction"
)

// Runner evaluates many correction requests concurrently. Each request gets
// its own correction.Context; producers within a request run sequentially.
type Runner struct {
	// Processor computes the corrections for each request.
	Processor *correction.Processor

	// Workspace supplies file content to change builders. When nil, Run
	// serves the requests' own unit content from memory.
	Workspace change.Workspace

	// Jobs bounds concurrency. 0 or negative means runtime.NumCPU().
	Jobs int

	contextOpts []correction.ContextOption
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkspace sets the workspace change builders read from.
func WithWorkspace(ws change.Workspace) Option {
	return func(r *Runner) {
		r.Workspace = ws
	}
}

// WithJobs bounds the number of requests evaluated at once.
func WithJobs(n int) Option {
	return func(r *Runner) {
		r.Jobs = n
	}
}

// WithContextOptions applies opts to every correction.Context the runner
// builds, e.g. correction.WithLocator.
func WithContextOptions(opts ...correction.ContextOption) Option {
	return func(r *Runner) {
		r.contextOpts = append(r.contextOpts, opts...)
	}
}

// New creates a runner over proc; a nil proc uses the default registry.
func New(proc *correction.Processor, opts ...Option) *Runner {
	if proc == nil {
		proc = correction.NewProcessor(nil)
	}
	r := &Runner{Processor: proc}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates reqs and returns their outcomes in request order. A request
// that fails is recorded in its outcome; Run itself only fails when the
// workspace cannot be prepared or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, reqs []Request) (*Result, error) {
	ws := r.Workspace
	if ws == nil {
		var err error
		ws, err = memWorkspace(reqs)
		if err != nil {
			return nil, err
		}
	}
	return r.run(ctx, ws, r.Jobs, reqs)
}

func (r *Runner) run(ctx context.Context, ws change.Workspace, jobs int, reqs []Request) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	result := &Result{Outcomes: make([]Outcome, 0, len(reqs))}
	if len(reqs) == 0 {
		return result, nil
	}

	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(reqs))

	outcomes := make([]Outcome, len(reqs))
	var g errgroup.Group
	g.SetLimit(jobs)

	for i, req := range reqs {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcomes[i] = r.evaluate(ctx, ws, req)
			return nil
		})
	}
	_ = g.Wait() // Workers never return errors.

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, o := range outcomes {
		result.accumulate(o)
	}

	logger.Debug("batch complete",
		logging.FieldRequests, result.Stats.Requests,
		logging.FieldFailed, result.Stats.Failed,
		logging.FieldCorrections, result.Stats.Corrections,
		logging.FieldJobs, jobs,
		logging.FieldDuration, time.Since(start))

	return result, nil
}

func (r *Runner) evaluate(ctx context.Context, ws change.Workspace, req Request) Outcome {
	outcome := Outcome{Request: req}
	ctx = logging.With(ctx, logging.FieldPath, req.Path())

	var (
		c   *correction.Context
		err error
	)
	if req.IsFix() {
		c, err = correction.NewFixContext(req.Unit, ws, req.Diagnostic, r.contextOpts...)
	} else {
		c, err = correction.NewAssistContext(req.Unit, ws, req.Offset, req.Length, r.contextOpts...)
	}
	if err != nil {
		outcome.Error = fmt.Errorf("%s: %w", req.Path(), err)
		return outcome
	}

	if req.IsFix() {
		outcome.Result, err = r.Processor.Fixes(ctx, c)
	} else {
		outcome.Result, err = r.Processor.Assists(ctx, c)
	}
	if err != nil {
		logging.FromContext(ctx).Warn("request failed",
			logging.FieldOffset, req.Offset,
			logging.FieldError, err)
		outcome.Result = nil
		outcome.Error = fmt.Errorf("%s: %w", req.Path(), err)
	}
	return outcome
}

// memWorkspace serves the content of every unit the requests reference.
func memWorkspace(reqs []Request) (change.Workspace, error) {
	files := make(map[string][]byte)
	for _, req := range reqs {
		if req.Unit != nil {
			files[req.Unit.Path] = req.Unit.Content
		}
	}

	ws, err := change.NewMemWorkspace(files)
	if err != nil {
		return nil, fmt.Errorf("build workspace: %w", err)
	}
	return ws, nil
}
