package avl

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Tree is a persistent AVL tree holding a set of elements of type T.
// Trees are values: copying a tree is cheap, and no operation will ever modify an
// existing tree. Operations which “modify” a tree return a new incarnation instead.
//
// A Tree needs an ordering of T; create trees with Immutable (for ordered types) or
// OrderedBy (for any type with a less-function). The zero value is an empty tree
// which can be queried, but not extended.
type Tree[T any] struct {
	props
	root *Node[T]
	less func(a, b T) bool
}

// Immutable constructs an empty tree for an ordered element type, with options, if you
// need any. Use it like this:
//
//	tree := avl.Immutable[int]()
//	tree = tree.With(42)
//	tree.Contains(42)   // true
//
// Floating point elements are ordered as by cmp.Less: NaN sorts before any other
// number and is equal only to NaN.
func Immutable[T constraints.Ordered](opts ...Option) Tree[T] {
	return OrderedBy(cmp.Less[T], opts...)
}

// OrderedBy constructs an empty tree for an element type ordered by less.
// less has to be a strict total order; two elements are considered equal if
// neither is less than the other.
//
//	byLength := avl.OrderedBy(func(a, b string) bool { return len(a) < len(b) })
func OrderedBy[T any](less func(a, b T) bool, opts ...Option) Tree[T] {
	assertThat(less != nil, "ordering of a tree must not be nil")
	tree := Tree[T]{less: less}
	for _, option := range opts {
		tree.props = option.config(tree.props)
	}
	return tree
}

// --- Options ---------------------------------------------------------------

// SpliceMode selects which neighbour of a deleted node with two children takes its place.
type SpliceMode int8

const (
	// Predecessor replaces a deleted inner node by the largest element of its left subtree.
	Predecessor SpliceMode = iota
	// Successor replaces a deleted inner node by the smallest element of its right subtree.
	Successor
)

type props struct {
	spliceMode SpliceMode
}

// Option is a type to help initializing trees at creation time.
type Option struct {
	config func(props) props
}

// Splice is an option to choose the deletion strategy for inner nodes. The default is
// Predecessor. The strategy influences the shape of trees, not their contents.
//
//	tree := avl.Immutable[int](avl.Splice(avl.Successor))
func Splice(mode SpliceMode) Option {
	conf := func(p props) props {
		if mode != Successor {
			mode = Predecessor
		}
		p.spliceMode = mode
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Contains is true if value is an element of tree.
func (tree Tree[T]) Contains(value T) bool {
	node := tree.root
	for node != nil {
		switch {
		case tree.less(value, node.value):
			node = node.left
		case tree.less(node.value, value):
			node = node.right
		default:
			return true
		}
	}
	return false
}

// With returns a copy of tree with value inserted.
// If value already is an element of tree, tree is returned unchanged.
func (tree Tree[T]) With(value T) Tree[T] {
	assertThat(tree.less != nil, "tree has no ordering; create it with Immutable or OrderedBy")
	node, path := tree.locate(value, make(path[T], 0, tree.root.Height()))
	if node != nil {
		return tree // no need for modification
	}
	tracer().Debugf("insert: new leaf below %s", path.last())
	newRoot := path.foldR(rebalanceSeam[T], leaf(value))
	tracer().Debugf("insert: path = %s, new height = %d", path, newRoot.height)
	return tree.withRoot(newRoot)
}

// WithDeleted returns a copy of tree with value removed.
// If value is not an element of tree, tree is returned unchanged.
func (tree Tree[T]) WithDeleted(value T) Tree[T] {
	node, path := tree.locate(value, make(path[T], 0, tree.root.Height()))
	if node == nil {
		return tree // no need for modification
	}
	tracer().Debugf("deletion: path = %s", path)
	newRoot := path.foldR(rebalanceSeam[T], tree.splice(node))
	return tree.withRoot(newRoot)
}

// Size returns the number of elements in tree.
func (tree Tree[T]) Size() int {
	stack := make([]*Node[T], 0, tree.root.Height())
	count := 0
	node := tree.root
	for node != nil || len(stack) > 0 {
		for ; node != nil; node = node.left {
			stack = append(stack, node)
		}
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		node = node.right
	}
	return count
}

// Min returns the smallest element of tree. If tree is empty, the zero value of T is
// returned, together with false.
func (tree Tree[T]) Min() (T, bool) {
	return tree.extreme(left)
}

// Max returns the largest element of tree. If tree is empty, the zero value of T is
// returned, together with false.
func (tree Tree[T]) Max() (T, bool) {
	return tree.extreme(right)
}

func (tree Tree[T]) extreme(dir direction) (T, bool) {
	if tree.root == nil {
		var none T
		return none, false
	}
	node := tree.root
	for node.child(dir) != nil {
		node = node.child(dir)
	}
	return node.value, true
}

// --- Accessors -------------------------------------------------------------

// Root returns the root node of tree. The root of an empty tree is nil.
func (tree Tree[T]) Root() *Node[T] {
	return tree.root
}

// IsEmpty is true for trees without elements.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Value returns the element at the root of tree.
// Calling Value on an empty tree panics with an error wrapping ErrEmptyValue.
func (tree Tree[T]) Value() T {
	return tree.root.Value()
}

// Height returns the height of tree. The height of an empty tree is 0.
func (tree Tree[T]) Height() int {
	return tree.root.Height()
}

// BalanceFactor returns height(right) - height(left) for the root of tree.
func (tree Tree[T]) BalanceFactor() int {
	return tree.root.BalanceFactor()
}

// Left returns the left subtree of tree's root as a tree of its own, sharing
// ordering and options with tree.
func (tree Tree[T]) Left() Tree[T] {
	return tree.withRoot(tree.root.Left())
}

// Right returns the right subtree of tree's root as a tree of its own, sharing
// ordering and options with tree.
func (tree Tree[T]) Right() Tree[T] {
	return tree.withRoot(tree.root.Right())
}

// SameAs is true if tree and other are the very same incarnation, i.e. share
// their root node. Two empty trees are always the same.
func (tree Tree[T]) SameAs(other Tree[T]) bool {
	return tree.root == other.root
}

func (tree Tree[T]) String() string {
	return tree.root.String()
}

// --- Functional API --------------------------------------------------------

// Contains is true if value is an element of tree.
func Contains[T any](tree Tree[T], value T) bool {
	return tree.Contains(value)
}

// Insert returns a copy of tree with value inserted, see Tree.With.
func Insert[T any](tree Tree[T], value T) Tree[T] {
	return tree.With(value)
}

// Remove returns a copy of tree with value removed, see Tree.WithDeleted.
func Remove[T any](tree Tree[T], value T) Tree[T] {
	return tree.WithDeleted(value)
}

// ---------------------------------------------------------------------------

func (tree Tree[T]) withRoot(root *Node[T]) Tree[T] {
	return Tree[T]{props: tree.props, root: root, less: tree.less}
}

// locate searches for value, tracking the path from the root. If value is found, its
// node is returned together with the path down to, but excluding, the node.
// Otherwise the returned node is nil and the path ends at the parent of the slot where
// value would have to be inserted.
func (tree Tree[T]) locate(value T, pathBuf path[T]) (*Node[T], path[T]) {
	p := pathBuf[:0]
	node := tree.root
	for node != nil {
		switch {
		case tree.less(value, node.value):
			p = append(p, step[T]{node: node, dir: left})
			node = node.left
		case tree.less(node.value, value):
			p = append(p, step[T]{node: node, dir: right})
			node = node.right
		default:
			return node, p
		}
	}
	return nil, p
}

// splice returns the subtree which takes the place of node after deleting node's
// value. Nodes with less than two children are replaced by their only child (or
// the empty tree). Otherwise node's value is replaced by its in-order predecessor
// (or successor, depending on options), which is removed from its subtree.
func (tree Tree[T]) splice(node *Node[T]) *Node[T] {
	switch {
	case node.left == nil:
		return node.right
	case node.right == nil:
		return node.left
	}
	if tree.spliceMode == Successor {
		succ, path := outermost(node.right, left, nil)
		tracer().Debugf("deletion: splicing successor %v into %v", succ.value, node.value)
		newRight := path.foldR(rebalanceSeam[T], succ.right)
		return balance(newNode(succ.value, node.left, newRight))
	}
	pred, path := outermost(node.left, right, nil)
	tracer().Debugf("deletion: splicing predecessor %v into %v", pred.value, node.value)
	newLeft := path.foldR(rebalanceSeam[T], pred.left)
	return balance(newNode(pred.value, newLeft, node.right))
}
