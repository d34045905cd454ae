package mdtable

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// ConvertColumn converts every value in parallel, at most Workers() at a time.
//
// The result always has len(values) rows in input order. Rows whose table
// cannot be rendered keep passthrough values and are reported in Warnings;
// they never abort the column. If ctx is canceled, rows not yet started are
// left as passthrough with the context error as their warning, and
// ConvertColumn returns ctx.Err() with the partial result.
func (c *Converter) ConvertColumn(ctx context.Context, values []string) (*ColumnResult, error) {
	out := &ColumnResult{Rows: make([]Result, len(values))}
	if len(values) == 0 {
		return out, nil
	}

	rowErrs := make([]error, len(values))

	var g errgroup.Group
	g.SetLimit(min(c.workers, len(values)))

	for i, text := range values {
		if err := ctx.Err(); err != nil {
			out.Rows[i], rowErrs[i] = Passthrough(text), err
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out.Rows[i], rowErrs[i] = Passthrough(text), err
				return nil
			}
			out.Rows[i], rowErrs[i] = c.Convert(text)
			return nil
		})
	}
	// Row failures are collected in rowErrs; the group itself never fails.
	_ = g.Wait()

	interrupted := false
	for i, err := range rowErrs {
		if out.Rows[i].HasTable() {
			out.Tables++
		}
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			interrupted = true
		}
		out.Warnings = append(out.Warnings, RowError{Row: i, Err: err})
	}

	if interrupted {
		return out, ctx.Err()
	}
	return out, nil
}
