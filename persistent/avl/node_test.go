package avl

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	tp "github.com/xlab/treeprint"
)

func TestNodeEmpty(t *testing.T) {
	var empty *Node[int]
	if !empty.IsEmpty() {
		t.Error("expected nil node to be empty")
	}
	if empty.Height() != 0 {
		t.Errorf("expected height of empty tree to be 0, is %d", empty.Height())
	}
	if empty.Left() != nil || empty.Right() != nil {
		t.Error("expected children of empty tree to be empty")
	}
	if empty.BalanceFactor() != 0 {
		t.Errorf("expected balance factor of empty tree to be 0, is %d", empty.BalanceFactor())
	}
	if empty.String() != "*" {
		t.Errorf("expected empty tree to print as '*', is %q", empty.String())
	}
}

func TestNodeEmptyValuePanics(t *testing.T) {
	var empty *Node[int]
	err := recoverError(func() { empty.Value() })
	if !errors.Is(err, ErrEmptyValue) {
		t.Errorf("expected Value() of empty tree to panic with ErrEmptyValue, got %v", err)
	}
}

func TestNodeHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()
	//
	n := newNode(4, newNode(2, leaf(1), leaf(3)), leaf(5))
	if n.Height() != 3 {
		t.Logf("tree =\n%s", printNode(n))
		t.Errorf("expected height 3, is %d", n.Height())
	}
	if n.BalanceFactor() != -1 {
		t.Logf("tree =\n%s", printNode(n))
		t.Errorf("expected balance factor -1, is %d", n.BalanceFactor())
	}
	if n.Left().Value() != 2 || n.Right().Value() != 5 {
		t.Errorf("expected children 2 and 5, have %v and %v", n.Left().Value(), n.Right().Value())
	}
}

func TestNodeString(t *testing.T) {
	n := newNode(2, leaf(1), newNode(3, nil, leaf(4)))
	s := n.String()
	if s != "((*, 1[0], *), 2[1], (*, 3[1], (*, 4[0], *)))" {
		t.Errorf("unexpected textual representation %q", s)
	}
}

func TestNodeWithChild(t *testing.T) {
	n := newNode(2, leaf(1), leaf(3))
	m := n.withChild(right, nil)
	if m == n || n.Right() == nil {
		t.Fatal("expected withChild to create a copy, leaving the original untouched")
	}
	if m.Left() != n.Left() {
		t.Error("expected copy to share its left child with the original")
	}
	if m.Height() != 2 || m.BalanceFactor() != -1 {
		t.Errorf("expected copy to have height 2 and balance factor -1, has %d | %d",
			m.Height(), m.BalanceFactor())
	}
}

// ---------------------------------------------------------------------------

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	f()
	return nil
}

func printTree[T any](tree Tree[T]) string {
	header := fmt.Sprintf("\nTree(height=%d)\n", tree.Height())
	return header + printNode(tree.root)
}

func printNode[T any](node *Node[T]) string {
	p := tp.New()
	ppt(p, node)
	return p.String() + "\n"
}

func ppt[T any](p tp.Tree, node *Node[T]) {
	if node == nil {
		p.AddNode("*")
		return
	}
	label := fmt.Sprintf("%v[%d]", node.value, node.BalanceFactor())
	if node.left == nil && node.right == nil {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	ppt(branch, node.left)
	ppt(branch, node.right)
}
