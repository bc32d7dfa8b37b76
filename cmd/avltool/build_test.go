package main

import (
	"testing"

	"github.com/npillmayer/avltree/persistent/avl"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	requireT := require.New(t)
	values, err := parseInts([]string{"5", " 3", "-8"})
	requireT.NoError(err)
	requireT.Equal([]int{5, 3, -8}, values)
	_, err = parseInts([]string{"5", "x"})
	requireT.Error(err)
}

func TestSplitList(t *testing.T) {
	requireT := require.New(t)
	requireT.Equal([]string{"1", "2"}, splitList("1,,2,"))
	requireT.Empty(splitList(""))
}

func TestBuildAndRemove(t *testing.T) {
	requireT := require.New(t)
	tree := buildTree([]int{5, 3, 8, 1, 4, 7, 9}, spliceMode(true))
	requireT.Equal(3, tree.Height())
	tree = removeAll(tree, []int{5, 42})
	requireT.False(tree.Contains(5))
	requireT.Equal(7, tree.Value())
	requireT.Equal(6, tree.Size())
	requireT.NoError(tree.Validate())
	requireT.Equal(avl.Predecessor, spliceMode(false))
}
