package avl

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// --- Step ------------------------------------------------------------------

// step holds a step of a path: a node together with the direction the path
// continues with.
type step[T any] struct {
	node *Node[T]
	dir  direction
}

func (s step[T]) String() string {
	if s.node == nil {
		return "-"
	}
	return fmt.Sprintf("%v%s", s.node.value, s.dir)
}

// --- Path ------------------------------------------------------------------

// path is the sequence of steps from the root of a tree down to a point of
// modification.
type path[T any] []step[T]

func (p path[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range p {
		fmt.Fprintf(&sb, "⟨%s⟩", s)
	}
	sb.WriteRune(']')
	return sb.String()
}

func (p path[T]) last() step[T] {
	if len(p) == 0 {
		return step[T]{}
	}
	return p[len(p)-1]
}

// foldR folds a path from the bottom up, starting with node zero. f is called for
// every step of the path with the result of the previous call.
func (p path[T]) foldR(f func(step[T], *Node[T]) *Node[T], zero *Node[T]) *Node[T] {
	r := zero
	for i := len(p) - 1; i >= 0; i-- {
		r = f(p[i], r)
	}
	return r
}

// rebalanceSeam creates a copy of the parent of a step, linking in the new child,
// and re-balances it.
func rebalanceSeam[T any](parent step[T], child *Node[T]) *Node[T] {
	return balance(parent.node.withChild(parent.dir, child))
}

// outermost walks from node in direction dir as long as possible, recording the
// path. It returns the node at the end of the walk, which is not part of the path.
// node must not be empty.
func outermost[T any](node *Node[T], dir direction, pathBuf path[T]) (*Node[T], path[T]) {
	if node == nil {
		if dir == left {
			panic(errors.WithStack(ErrEmptyLeftmost))
		}
		panic(errors.WithStack(ErrEmptyRightmost))
	}
	p := pathBuf
	for node.child(dir) != nil {
		p = append(p, step[T]{node: node, dir: dir})
		node = node.child(dir)
	}
	return node, p
}
