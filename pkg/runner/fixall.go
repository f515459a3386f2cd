package runner

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gocorrect/internal/logging"
	"github.com/yaklabco/gocorrect/pkg/change"
	"github.com/yaklabco/gocorrect/pkg/unit"
)

// ResolveFiles reads and resolves paths concurrently. Units are returned in
// path order. Each file is type-checked as its own package.
func ResolveFiles(ctx context.Context, opts Options, jobs int, paths []string) ([]*unit.Resolved, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	fsys := opts.fs()
	session := opts.session()

	var resolveOpts []unit.Option
	if opts.Importer != nil {
		resolveOpts = append(resolveOpts, unit.WithImporter(opts.Importer))
	}

	units := make([]*unit.Resolved, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			content, err := afero.ReadFile(fsys, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			u, err := unit.Resolve(gctx, path, content, session, resolveOpts...)
			if err != nil {
				return err
			}
			units[i] = u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}

// FixAll discovers Go files under opts, resolves them, and computes fixes
// for every diagnostic a registered fix handles. When the runner has no
// workspace, edits are prepared against opts.Fs.
func (r *Runner) FixAll(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = opts.session().Config().Jobs
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldFiles, len(files))

	units, err := ResolveFiles(ctx, opts, jobs, files)
	if err != nil {
		return nil, err
	}

	ws := r.Workspace
	if ws == nil {
		ws = change.NewFSWorkspace(opts.fs())
	}

	result, err := r.run(ctx, ws, jobs, DiagnosticRequests(r.Processor.Registry, units...))
	if result != nil {
		result.Stats.FilesDiscovered = len(files)
		result.Stats.FilesResolved = len(units)
	}
	return result, err
}
