package batch

import (
	"context"
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/jonlawlor/cartesian"
	"github.com/jonlawlor/cartesian/gen"
)

// Runner generates and solves batches of cases.  A Runner is not safe for
// concurrent use.
type Runner struct {
	opts options
}

// New creates a Runner configured by opts.
func New(opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Runner{opts: o}
}

// Run generates and solves the configured number of cases, in order.  A
// case that fails does not stop the run; it is added to the report's
// failures instead.
//
// Run returns an error only if the config is invalid, the error log cannot
// be written, or ctx is done.  Cancellation is checked between cases, and the
// report of the cases run so far is returned with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Report, error) {
	if err := r.opts.cfg.Validate(); err != nil {
		return Report{}, err
	}
	rng := rand.New(rand.NewSource(r.opts.seed))

	var rep Report
	for i := 1; i <= r.opts.cases; i++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		id := fmt.Sprintf("%s%d", r.opts.prefix, i)
		rep.add(id, r.generate(ctx, id, rng))
	}
	return rep, r.finish(ctx, rep)
}

// Resolve solves the reduced datasets of existing cases in the store and
// writes their answers, as Run does for generated cases.
func (r *Runner) Resolve(ctx context.Context, ids ...string) (Report, error) {
	if r.opts.store == nil {
		return Report{}, fmt.Errorf("batch: resolve needs a store")
	}

	var rep Report
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		c, err := r.opts.store.ReadCase(id)
		if err == nil && c.Reduced == nil {
			err = fmt.Errorf("batch: case %q has no reduced dataset: %w", id, fs.ErrNotExist)
		}
		if err != nil {
			err = &ioError{err}
			r.opts.logger.WithCase(id).LogCase(ctx, 0, cartesian.Solution{}, err)
			rep.add(id, err)
			continue
		}
		rep.add(id, r.solve(ctx, id, c.Reduced))
	}
	return rep, r.finish(ctx, rep)
}

func (r *Runner) generate(ctx context.Context, id string, rng *rand.Rand) error {
	full, reduced, err := gen.Table(rng, r.opts.cfg)
	if err != nil {
		return err
	}
	if s := r.opts.store; s != nil {
		if err := s.WriteInput(id, full, reduced); err != nil {
			err = &ioError{err}
			r.opts.logger.WithCase(id).LogCase(ctx, reduced.Card(), cartesian.Solution{}, err)
			return err
		}
	}
	return r.solve(ctx, id, reduced)
}

// solve searches rows and writes the answer for case id.
func (r *Runner) solve(ctx context.Context, id string, rows cartesian.Rows) (err error) {
	var sol cartesian.Solution
	defer func() {
		r.opts.logger.WithCase(id).LogCase(ctx, rows.Card(), sol, err)
	}()

	if n := rows.Distinct().Card(); n > r.opts.maxRows {
		return &cartesian.RowLimitError{Rows: n, Max: r.opts.maxRows}
	}
	sol, err = cartesian.FindMinimal(rows)
	if err != nil {
		return err
	}
	if s := r.opts.store; s != nil {
		if err := s.WriteAnswer(id, sol.Subset()); err != nil {
			return &ioError{err}
		}
	}
	return nil
}

// finish writes the error log and logs the summary of a run.
func (r *Runner) finish(ctx context.Context, rep Report) error {
	r.opts.logger.LogBatch(ctx, rep)
	if s := r.opts.store; s != nil {
		if err := s.WriteErrorLog(r.opts.errorLog, rep.FailedIDs()); err != nil {
			return fmt.Errorf("batch: %w", err)
		}
	}
	return nil
}
