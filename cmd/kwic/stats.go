package main

import (
	"fmt"
	"time"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	session := deps.Open(deps.Ctx, c.File)
	defer session.Close()
	doc := session.Document

	fmt.Fprintf(deps.Stdout, "Path:   %s\n", doc.Path)
	if doc.ID == "" {
		fmt.Fprintln(deps.Stdout, "Status: not loaded")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "ID:     %s\n", doc.ID)
	fmt.Fprintf(deps.Stdout, "Size:   %d bytes\n", doc.Size)
	fmt.Fprintf(deps.Stdout, "Words:  %d\n", session.WordCount)
	fmt.Fprintf(deps.Stdout, "Hash:   %s\n", doc.ContentHash)
	fmt.Fprintf(deps.Stdout, "Loaded: %s\n", doc.LoadedAt.Format(time.RFC3339))
	return nil
}
