/*
Command avltool builds persistent AVL trees from integers given on the command line
and prints them, writes GraphViz diagrams of them, or checks their invariants.

	avltool print 5 3 8 1 4 7 9
	avltool print -remove 5 5 3 8 1 4 7 9
	avltool dot -remove 2,3 -o tree.dot 1 2 3 4 5
	avltool check -remove 3 1 2 3 4 5
*/
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
)

// stdout receives the output of all commands.
var stdout io.Writer = os.Stdout

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&cmdPrint{}, "")
	subcommands.Register(&cmdDot{}, "")
	subcommands.Register(&cmdCheck{}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
