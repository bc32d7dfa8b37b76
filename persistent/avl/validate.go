package avl

import (
	"github.com/pkg/errors"
)

// Validate checks the invariants of tree:
//
//   - every element of a left subtree is less than the element of its parent,
//     every element of a right subtree is greater
//   - every node carries the correct height
//   - the heights of the subtrees of every node differ by at most 1
//
// Trees created through the API of this package always are valid; Validate is
// meant for tests and for debugging.
func (tree Tree[T]) Validate() error {
	if tree.root == nil {
		return nil
	}
	if tree.less == nil {
		return errors.New("non-empty tree without ordering")
	}
	_, err := tree.validate(tree.root, nil, nil)
	return err
}

// validate checks the subtree at node, which has to hold elements between lower and
// upper (both exclusive, nil meaning unbounded). It returns the re-computed height of
// node.
func (tree Tree[T]) validate(node *Node[T], lower, upper *T) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lower != nil && !tree.less(*lower, node.value) {
		return 0, errors.Errorf("element %v not greater than %v in ancestor", node.value, *lower)
	}
	if upper != nil && !tree.less(node.value, *upper) {
		return 0, errors.Errorf("element %v not less than %v in ancestor", node.value, *upper)
	}
	lh, err := tree.validate(node.left, lower, &node.value)
	if err != nil {
		return 0, errors.Wrapf(err, "left of %v", node.value)
	}
	rh, err := tree.validate(node.right, &node.value, upper)
	if err != nil {
		return 0, errors.Wrapf(err, "right of %v", node.value)
	}
	h := max(lh, rh) + 1
	if node.height != h {
		return 0, errors.Errorf("node %v has height %d, should be %d", node.value, node.height, h)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, errors.Errorf("node %v is out of balance, balance factor = %d", node.value, bf)
	}
	return h, nil
}
