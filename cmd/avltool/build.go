package main

import (
	"strconv"
	"strings"

	"github.com/npillmayer/avltree/persistent/avl"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// parseInts converts command line arguments to integers.
func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid tree element %q", arg)
		}
		values = append(values, n)
	}
	return values, nil
}

// splitList splits a comma-separated flag value, ignoring empty entries.
func splitList(list string) []string {
	return lo.Filter(strings.Split(list, ","), func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})
}

// buildTree inserts values in order into an empty tree.
func buildTree(values []int, mode avl.SpliceMode) avl.Tree[int] {
	tree := avl.Immutable[int](avl.Splice(mode))
	for _, v := range values {
		tree = tree.With(v)
	}
	return tree
}

// removeAll deletes values in order from tree.
func removeAll(tree avl.Tree[int], values []int) avl.Tree[int] {
	for _, v := range values {
		tree = tree.WithDeleted(v)
	}
	return tree
}

func spliceMode(successor bool) avl.SpliceMode {
	if successor {
		return avl.Successor
	}
	return avl.Predecessor
}
