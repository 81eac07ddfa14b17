package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/kwic"
	"github.com/fwojciec/kwic/lru"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Open loads a document and returns a session for searching it.
	// Open never fails; unreadable documents yield an empty session.
	Open func(ctx context.Context, path string) *Session
}

// Session is a loaded document ready for repeated searches.
type Session struct {
	Document  *kwic.Document
	WordCount int
	Searcher  kwic.Searcher

	// Cache is the result cache behind Searcher. Optional.
	Cache  *lru.Searcher
	Logger *slog.Logger
}

// Close ends the session and logs cache usage at debug level.
func (s *Session) Close() {
	if s.Cache == nil || s.Logger == nil {
		return
	}
	hits, misses := s.Cache.Stats()
	s.Logger.Debug("search cache",
		"path", s.Document.Path,
		"hits", hits,
		"misses", misses,
		"entries", s.Cache.Len(),
	)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool `short:"v" env:"KWIC_VERBOSE" help:"Enable debug logging"`
	CacheSize int  `name:"cache-size" env:"KWIC_CACHE_SIZE" default:"256" help:"Number of distinct searches to cache"`

	Search SearchCmd `cmd:"" help:"Search a file for one or more words"`
	Repl   ReplCmd   `cmd:"" help:"Search a file repeatedly with queries read from stdin (end a line with ' :N' to set context, ':q' to quit)"`
	Stats  StatsCmd  `cmd:"" help:"Show document statistics"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	File    string   `arg:"" help:"Text file to search"`
	Queries []string `arg:"" name:"query" help:"Words to search for"`
	Context int      `short:"c" env:"KWIC_CONTEXT" default:"0" help:"Words of context on each side of a match"`
	Output  string   `short:"o" help:"Write results to a file instead of stdout"`
}

// ReplCmd is the "repl" subcommand.
// Each stdin line is a query, optionally followed by " :N" to use N words of
// context for that query only.
type ReplCmd struct {
	File    string `arg:"" help:"Text file to search"`
	Context int    `short:"c" env:"KWIC_CONTEXT" default:"0" help:"Default words of context on each side of a match"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	File string `arg:"" help:"Text file to inspect"`
}
