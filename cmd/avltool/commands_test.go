package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/require"
)

// run executes cmd with command line args, capturing its output.
func run(t *testing.T, cmd subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	var buf bytes.Buffer
	saved := stdout
	stdout = &buf
	defer func() { stdout = saved }()
	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return cmd.Execute(context.Background(), f), buf.String()
}

func TestCmdPrint(t *testing.T) {
	requireT := require.New(t)
	status, out := run(t, &cmdPrint{}, "-compact", "1", "2", "3")
	requireT.Equal(subcommands.ExitSuccess, status)
	requireT.Equal("((*, 1[0], *), 2[0], (*, 3[0], *))\n", out)

	status, out = run(t, &cmdPrint{}, "-remove", "5", "5", "3", "8", "1", "4", "7", "9")
	requireT.Equal(subcommands.ExitSuccess, status)
	requireT.Contains(out, "Tree(height=3, size=6)")
	requireT.Contains(out, "4  h=3")

	status, _ = run(t, &cmdPrint{}, "1", "two")
	requireT.Equal(subcommands.ExitUsageError, status)
	status, _ = run(t, &cmdPrint{}, "-remove", "x", "1")
	requireT.Equal(subcommands.ExitUsageError, status)
}

func TestCmdCheck(t *testing.T) {
	requireT := require.New(t)
	status, out := run(t, &cmdCheck{}, "1", "2", "3", "4", "5")
	requireT.Equal(subcommands.ExitSuccess, status)
	requireT.Equal("ok: size=5 height=3\n", out)

	status, out = run(t, &cmdCheck{}, "-remove", "3,42", "1", "2", "3", "4", "5")
	requireT.Equal(subcommands.ExitSuccess, status)
	requireT.Equal("ok: size=4 height=3\n", out)

	status, _ = run(t, &cmdCheck{}, "-remove", "1,,x", "1")
	requireT.Equal(subcommands.ExitUsageError, status)
}

func TestCmdDot(t *testing.T) {
	requireT := require.New(t)
	status, out := run(t, &cmdDot{}, "-remove", "2", "1", "2", "3")
	requireT.Equal(subcommands.ExitSuccess, status)
	requireT.True(strings.HasPrefix(out, "digraph g {"))
	requireT.Equal(2, strings.Count(out, "shape=box"))

	name := filepath.Join(t.TempDir(), "tree.dot")
	status, out = run(t, &cmdDot{}, "-o", name, "-successor", "-remove", "2,3", "1", "2", "3", "4", "5")
	requireT.Equal(subcommands.ExitSuccess, status)
	requireT.Empty(out)
	dot, err := os.ReadFile(name)
	requireT.NoError(err)
	requireT.True(strings.HasSuffix(string(dot), "}\n"))
	requireT.Equal(3, strings.Count(string(dot), "shape=box"))

	status, _ = run(t, &cmdDot{}, "-o", filepath.Join(t.TempDir(), "missing", "tree.dot"), "1")
	requireT.Equal(subcommands.ExitFailure, status)
	status, _ = run(t, &cmdDot{}, "x")
	requireT.Equal(subcommands.ExitUsageError, status)
}
