package chart

import (
	"context"
	"runtime"
	"sync"

	"github.com/Veraticus/techplot/internal/model"
	"golang.org/x/sync/errgroup"
)

// Job is a chart to render together with the rows of its source.
type Job struct {
	Spec Spec
	Rows []model.ResultRow
}

// Result reports the outcome of one job.
type Result struct {
	Err  error
	Name string
	Path string
}

// Pipeline renders jobs concurrently into one output directory.
type Pipeline struct {
	Renderer *Renderer
	// OnDone is called once per finished job. Calls are serialized.
	OnDone    func(Result)
	Project   string
	OutputDir string
	Workers   int
}

// Run renders every job and returns the results in job order. A failed chart does not
// stop the others; only context cancellation aborts the run.
func (p *Pipeline) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	var mu sync.Mutex
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			path, err := p.Renderer.RenderFile(gctx, job.Spec, job.Rows, p.Project, p.OutputDir)
			res := Result{Name: job.Spec.Name, Path: path, Err: err}
			results[i] = res

			if p.OnDone != nil {
				mu.Lock()
				p.OnDone(res)
				mu.Unlock()
			}

			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (p *Pipeline) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.NumCPU()
}
