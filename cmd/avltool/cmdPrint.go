package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/npillmayer/avltree/persistent/avl/avldbg"
)

type cmdPrint struct {
	argRemove    string
	argSuccessor bool
	argCompact   bool
}

func (cmd *cmdPrint) Name() string     { return "print" }
func (cmd *cmdPrint) Synopsis() string { return "Print an AVL tree built from the arguments" }
func (cmd *cmdPrint) Usage() string {
	return "print [-remove v,…] [-successor] [-compact] values…\n"
}

func (cmd *cmdPrint) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argRemove, "remove", "", "Comma-separated elements to delete after building the tree")
	f.BoolVar(&cmd.argSuccessor, "successor", false, "Splice in-order successors instead of predecessors on deletion")
	f.BoolVar(&cmd.argCompact, "compact", false, "Print the tree on a single line")
}

func (cmd *cmdPrint) Execute(_ context.Context,
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
	tree := removeAll(buildTree(values, spliceMode(cmd.argSuccessor)), removals)
	if cmd.argCompact {
		fmt.Fprintln(stdout, tree)
		return subcommands.ExitSuccess
	}
	fmt.Fprint(stdout, avldbg.Print(tree))
	return subcommands.ExitSuccess
}
