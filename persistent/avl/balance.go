package avl

/*
Remarks:
--------

Rotations never touch existing nodes. Each rotation allocates two fresh nodes and
returns the new top of the subtree; the nodes of the original subtree stay valid for
every incarnation of the tree still referencing them.

    rotateLeft:                     rotateRight:

        n                 r             n                 l
       / \               / \           / \               / \
      a   r      ⇒      n   c         l   c      ⇒      a   n
         / \           / \           / \                   / \
        b   c         a   b         a   b                 b   c
*/

// rotateLeft moves the right child of n up. n must have a right child.
func rotateLeft[T any](n *Node[T]) *Node[T] {
	assertThat(n != nil && n.right != nil, "rotate left requires a right child")
	r := n.right
	tracer().Debugf("rotate left at %v", n.value)
	return newNode(r.value, newNode(n.value, n.left, r.left), r.right)
}

// rotateRight moves the left child of n up. n must have a left child.
func rotateRight[T any](n *Node[T]) *Node[T] {
	assertThat(n != nil && n.left != nil, "rotate right requires a left child")
	l := n.left
	tracer().Debugf("rotate right at %v", n.value)
	return newNode(l.value, l.left, newNode(n.value, l.right, n.right))
}

// balance restores the AVL property for a freshly created node, whose subtrees are
// balanced but whose own balance factor may be ±2. If n is balanced already, it is
// returned unchanged.
func balance[T any](n *Node[T]) *Node[T] {
	bf := n.BalanceFactor()
	assertThat(bf >= -2 && bf <= 2, "cannot re-balance node with balance factor %d", bf)
	switch {
	case bf <= -2: // left-heavy
		if n.left.BalanceFactor() > 0 { // heaviness from inner grandchild
			return rotateRight(newNode(n.value, rotateLeft(n.left), n.right))
		}
		return rotateRight(n)
	case bf >= 2: // right-heavy
		if n.right.BalanceFactor() < 0 { // heaviness from inner grandchild
			return rotateLeft(newNode(n.value, n.left, rotateRight(n.right)))
		}
		return rotateLeft(n)
	}
	return n
}
