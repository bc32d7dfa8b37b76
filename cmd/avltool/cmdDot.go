package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/npillmayer/avltree/persistent/avl"
	"github.com/npillmayer/avltree/persistent/avl/avldbg"
)

type cmdDot struct {
	argRemove    string
	argOutput    string
	argSuccessor bool
}

func (cmd *cmdDot) Name() string     { return "dot" }
func (cmd *cmdDot) Synopsis() string { return "Write a GraphViz diagram of a tree and its incarnations" }
func (cmd *cmdDot) Usage() string {
	return "dot [-remove v,…] [-o file] [-successor] values…\n"
}

func (cmd *cmdDot) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argRemove, "remove", "", "Comma-separated elements to delete, one incarnation per deletion")
	f.StringVar(&cmd.argOutput, "o", "", "Output file (default stdout)")
	f.BoolVar(&cmd.argSuccessor, "successor", false, "Splice in-order successors instead of predecessors on deletion")
}

func (cmd *cmdDot) Execute(_ context.Context,
	f *flag.FlagSet,
	args ...interface{}) subcommands.ExitStatus {
	values, err := parseInts(f.Args())
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	removals, err := parseInts(splitList(cmd.argRemove))
	if err != nil {
		log.Println(err)
		return subcommands.ExitUsageError
	}
	tree := buildTree(values, spliceMode(cmd.argSuccessor))
	versions := []avl.Tree[int]{tree}
	for _, v := range removals {
		tree = tree.WithDeleted(v)
		versions = append(versions, tree)
	}
	if cmd.argOutput == "" {
		return writeDiagram(stdout, versions)
	}
	out, err := os.Create(cmd.argOutput)
	if err != nil {
		log.Println("cannot create output file:", err)
		return subcommands.ExitFailure
	}
	status := writeDiagram(out, versions)
	if err = out.Close(); err != nil {
		log.Println("cannot close output file:", err)
		return subcommands.ExitFailure
	}
	return status
}

func writeDiagram(w io.Writer, versions []avl.Tree[int]) subcommands.ExitStatus {
	if err := avldbg.ToGraphViz(w, versions...); err != nil {
		log.Println("cannot write diagram:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
