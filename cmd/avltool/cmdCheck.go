package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
)

type cmdCheck struct {
	argRemove string
}

func (cmd *cmdCheck) Name() string     { return "check" }
func (cmd *cmdCheck) Synopsis() string { return "Build a tree and validate its invariants" }
func (cmd *cmdCheck) Usage() string    { return "check [-remove v,…] values…\n" }

func (cmd *cmdCheck) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.argRemove, "remove", "", "Comma-separated elements to delete after building the tree")
}

func (cmd *cmdCheck) Execute(_ context.Context,
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
	tree := buildTree(values, spliceMode(false))
	if err = tree.Validate(); err != nil {
		log.Println("invalid tree:", err)
		return subcommands.ExitFailure
	}
	tree = removeAll(tree, removals)
	if err = tree.Validate(); err != nil {
		log.Println("invalid tree after deletion:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "ok: size=%d height=%d\n", tree.Size(), tree.Height())
	return subcommands.ExitSuccess
}
