package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fwojciec/kwic"
	"github.com/fwojciec/kwic/fs"
	"golang.org/x/sync/errgroup"
)

// Run executes the search command.
// Queries run concurrently; results are printed in argument order.
func (c *SearchCmd) Run(deps *Dependencies) error {
	session := deps.Open(deps.Ctx, c.File)
	defer session.Close()

	results := make([][]string, len(c.Queries))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, query := range c.Queries {
		g.Go(func() error {
			r, err := session.Searcher.Search(query, c.Context)
			if err != nil {
				return fmt.Errorf("search %q: %w", query, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", kwic.ErrorMessage(err))
		return err
	}

	parts := make([]string, 0, len(c.Queries))
	total := 0
	for i, query := range c.Queries {
		parts = append(parts, kwic.FormatResults(query, results[i]))
		total += len(results[i])
	}
	out := strings.Join(parts, "\n\n") + "\n"

	if c.Output == "" {
		fmt.Fprint(deps.Stdout, out)
		return nil
	}

	if err := fs.WriteFile(c.Output, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write %s: %v\n", c.Output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d results to %s\n", total, c.Output)
	return nil
}
