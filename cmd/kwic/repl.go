package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/kwic"
)

// quitCommand ends a repl session.
const quitCommand = ":q"

// Run executes the repl command.
// Each input line is a query, optionally followed by " :N" to use N context
// words for that query only. A trailing plain number is part of the query.
func (c *ReplCmd) Run(deps *Dependencies) error {
	session := deps.Open(deps.Ctx, c.File)
	defer session.Close()

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == quitCommand {
			return nil
		}

		query, contextWords := parseReplLine(line, c.Context)
		results, err := session.Searcher.Search(query, contextWords)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", kwic.ErrorMessage(err))
			continue
		}
		fmt.Fprintln(deps.Stdout, kwic.FormatResults(query, results))
	}

	fmt.Fprintln(deps.Stdout)
	return scanner.Err()
}

// parseReplLine splits a repl line into a query and a context width.
// A trailing " :N" overrides def.
func parseReplLine(line string, def int) (string, int) {
	i := strings.LastIndex(line, " :")
	if i < 0 {
		return line, def
	}
	n, err := strconv.Atoi(line[i+2:])
	if err != nil {
		return line, def
	}
	return strings.TrimSpace(line[:i]), n
}
