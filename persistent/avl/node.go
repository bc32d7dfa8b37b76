package avl

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrEmptyValue is the cause of the panic raised when asking an empty tree for its value.
var ErrEmptyValue = errors.New("no value on an empty tree")

// ErrEmptyRightmost and ErrEmptyLeftmost are the causes of the panic raised when
// searching the outermost value of an empty tree.
var (
	ErrEmptyRightmost = errors.New("no rightmost value in an empty tree")
	ErrEmptyLeftmost  = errors.New("no leftmost value in an empty tree")
)

// Node is a node of an AVL tree. The nil *Node is the empty tree; all methods except
// Value are safe to call on it.
//
// Nodes are immutable. Clients may inspect them, but there is no way to change a
// node once it has been created.
type Node[T any] struct {
	value  T
	left   *Node[T]
	right  *Node[T]
	height int
}

// newNode is the only way nodes come to life. The height is derived from the children
// and never changes afterwards.
func newNode[T any](value T, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		value:  value,
		left:   left,
		right:  right,
		height: max(left.Height(), right.Height()) + 1,
	}
}

// leaf creates a node without children.
func leaf[T any](value T) *Node[T] {
	return &Node[T]{value: value, height: 1}
}

// IsEmpty is true for the empty tree.
func (node *Node[T]) IsEmpty() bool {
	return node == nil
}

// Value returns the element stored in node.
// Calling Value on the empty tree is a programming error and will panic with an
// error wrapping ErrEmptyValue.
func (node *Node[T]) Value() T {
	if node == nil {
		panic(errors.WithStack(ErrEmptyValue))
	}
	return node.value
}

// Height is 0 for the empty tree and 1 for a single node.
func (node *Node[T]) Height() int {
	if node == nil {
		return 0
	}
	return node.height
}

// Left returns the left subtree. The left subtree of the empty tree is the empty tree.
func (node *Node[T]) Left() *Node[T] {
	if node == nil {
		return nil
	}
	return node.left
}

// Right returns the right subtree. The right subtree of the empty tree is the empty tree.
func (node *Node[T]) Right() *Node[T] {
	if node == nil {
		return nil
	}
	return node.right
}

// BalanceFactor is height(right) - height(left). It is 0 for the empty tree.
func (node *Node[T]) BalanceFactor() int {
	if node == nil {
		return 0
	}
	return node.right.Height() - node.left.Height()
}

// withChild returns a copy of node where the child in direction dir is replaced.
func (node *Node[T]) withChild(dir direction, child *Node[T]) *Node[T] {
	if dir == left {
		return newNode(node.value, child, node.right)
	}
	return newNode(node.value, node.left, child)
}

func (node *Node[T]) child(dir direction) *Node[T] {
	if dir == left {
		return node.Left()
	}
	return node.Right()
}

// String returns a parenthesized representation, e.g. "((*, 1[0], *), 2[0], (*, 3[0], *))".
// Numbers in brackets are balance factors, '*' denotes an empty subtree.
func (node *Node[T]) String() string {
	var sb strings.Builder
	node.format(&sb)
	return sb.String()
}

func (node *Node[T]) format(sb *strings.Builder) {
	if node == nil {
		sb.WriteRune('*')
		return
	}
	sb.WriteRune('(')
	node.left.format(sb)
	fmt.Fprintf(sb, ", %v[%d], ", node.value, node.BalanceFactor())
	node.right.format(sb)
	sb.WriteRune(')')
}

// --- Direction -------------------------------------------------------------

// direction tells which child of a node a path continues with.
type direction int8

const (
	left direction = iota
	right
)

func (dir direction) String() string {
	if dir == left {
		return "L"
	}
	return "R"
}
