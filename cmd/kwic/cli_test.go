package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/kwic/cmd/kwic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"search", "repl", "stats"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--help"}, strings.NewReader(""), stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	for _, cmd := range []string{"search", "repl", "stats"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_NoArgsReturnsError(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{}, strings.NewReader(""), stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func writeDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMain_Run_Search(t *testing.T) {
	t.Parallel()

	t.Run("searches a file end to end", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, "I saw a cat.\r\nThe cat saw me.")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"search", path, "cat", "dog", "-c", "2"},
			strings.NewReader(""), stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "2 matches for \"cat\"")
		assert.Contains(t, output, "   1: saw a cat.\r\nThe")
		assert.Contains(t, output, "No matches for \"dog\"")
		assert.Less(t, strings.Index(output, "\"cat\""), strings.Index(output, "\"dog\""))
		assert.Empty(t, stderr.String())
	})

	t.Run("continues with empty document when file is missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.txt")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"search", path, "cat"},
			strings.NewReader(""), stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No matches for \"cat\"")
		assert.Contains(t, stderr.String(), "encountered error starting searcher")
	})

	t.Run("returns error for negative context", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, "the cat sat")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"search", path, "cat", "--context=-1"},
			strings.NewReader(""), stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "context words must be non-negative")
	})

	t.Run("logs searches when verbose", func(t *testing.T) {
		t.Parallel()

		path := writeDocument(t, "the cat sat")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"--verbose", "search", path, "cat"},
			strings.NewReader(""), stdout, stderr)

		require.NoError(t, err)
		logs := stderr.String()
		assert.Contains(t, logs, "document load")
		assert.Contains(t, logs, "query=cat")
	})
}

func TestMain_Run_Stats(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "the cat  sat\r\ndown")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(),
		[]string{"stats", path},
		strings.NewReader(""), stdout, stderr)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "Size:   18 bytes")
	assert.Contains(t, output, "Words:  4")
}

func TestMain_Run_Repl(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "a b c cat d e f")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(),
		[]string{"repl", path, "-c", "1"},
		strings.NewReader("cat\ncat :2\n:q\n"), stdout, stderr)

	require.NoError(t, err)
	output := stdout.String()
	assert.Contains(t, output, "1: c cat d")
	assert.Contains(t, output, "1: b c cat d e")
}

func TestMain_Run_VerboseLogsIndexAndCacheUsage(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "a b c cat d e f")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(),
		[]string{"-v", "repl", path},
		strings.NewReader("cat\ncat\ndog\n"), stdout, stderr)

	require.NoError(t, err)
	logs := stderr.String()
	assert.Contains(t, logs, "trigram index")
	assert.Contains(t, logs, "grams=")
	assert.Contains(t, logs, "search cache")
	assert.Contains(t, logs, "hits=1")
	assert.Contains(t, logs, "misses=2")
	assert.Contains(t, logs, "entries=2")
}

func TestMain_Run_QuietByDefault(t *testing.T) {
	t.Parallel()

	path := writeDocument(t, "a b c cat d e f")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(),
		[]string{"repl", path},
		strings.NewReader("cat\ncat\n"), stdout, stderr)

	require.NoError(t, err)
	assert.NotContains(t, stderr.String(), "search cache")
	assert.NotContains(t, stderr.String(), "trigram index")
}
