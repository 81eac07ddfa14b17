// Package kwic provides keyword-in-context search over a single text document.
// A document is loaded once and can then be searched any number of times;
// every occurrence of a query word is returned together with a window of
// whole words on each side.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, bloom/, lru/, slog/).
package kwic
