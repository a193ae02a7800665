package generator

import (
	"context"
	"fmt"

	"github.com/aretw0/fixtura/pkg/domain"
	"golang.org/x/sync/errgroup"
)

// CaseError reports which test case of a batch failed.
type CaseError struct {
	Index int
	Err   error
}

func (e *CaseError) Error() string {
	return fmt.Sprintf("case %d: %v", e.Index, e.Err)
}

func (e *CaseError) Unwrap() error {
	return e.Err
}

// GenerateCases builds count records from schema, one after another.
// count == 0 yields an empty set. The first failing case aborts the batch
// and no records are returned.
func (g *Generator) GenerateCases(count int, schema domain.Schema) (domain.TestCaseSet, error) {
	return g.GenerateCasesContext(context.Background(), count, schema)
}

// GenerateCasesContext is GenerateCases with cancellation checked between
// records.
func (g *Generator) GenerateCasesContext(ctx context.Context, count int, schema domain.Schema) (domain.TestCaseSet, error) {
	if count < 0 {
		return nil, domain.NewRangeError("count", "%d is negative", count)
	}

	cases := make(domain.TestCaseSet, 0, count)
	for i := range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := g.GenerateRecord(schema)
		if err != nil {
			return nil, &CaseError{Index: i, Err: err}
		}
		cases = append(cases, rec)
	}

	g.logger.Debug("Generated test cases", "count", count, "fields", len(schema))
	return cases, nil
}

// GenerateCasesParallel splits the batch into contiguous chunks, one per
// worker. Each worker owns a child Generator forked from g before fan-out,
// so no randomness source is shared across goroutines. Records keep index
// order. The first error cancels the remaining workers.
func (g *Generator) GenerateCasesParallel(ctx context.Context, count int, schema domain.Schema, workers int) (domain.TestCaseSet, error) {
	if count < 0 {
		return nil, domain.NewRangeError("count", "%d is negative", count)
	}
	if workers <= 1 || count <= 1 {
		return g.GenerateCasesContext(ctx, count, schema)
	}
	workers = min(workers, count)

	chunk := (count + workers - 1) / workers
	cases := make(domain.TestCaseSet, count)
	eg, ctx := errgroup.WithContext(ctx)

	for lo := 0; lo < count; lo += chunk {
		hi := min(lo+chunk, count)
		child := g.Fork()
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec, err := child.GenerateRecord(schema)
				if err != nil {
					return &CaseError{Index: i, Err: err}
				}
				cases[i] = rec
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.logger.Debug("Generated test cases", "count", count, "fields", len(schema), "workers", workers)
	return cases, nil
}
