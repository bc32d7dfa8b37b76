/*
Package avl implements a persistent (immutable) in-memory AVL tree, holding a set of
ordered elements.

Every “modification” of a tree (insertion or deletion) creates a new incarnation of the
tree, leaving the original untouched. New incarnations share every subtree which is not
on the path from the root to the point of modification with the original. Holding on to
an older incarnation is therefore cheap, and older incarnations remain fully usable.

Trees are height-balanced: for every node, the heights of its two subtrees differ by at
most one. Re-balancing is done by single and double rotations on the way back up from
the point of modification, see https://en.wikipedia.org/wiki/AVL_tree.

Use it like this:

	tree := avl.Immutable[int]()
	tree = tree.With(5).With(3).With(8)
	tree.Contains(3)                    // true
	smaller := tree.WithDeleted(3)      // tree still contains 3

Trees are inherently concurrency-safe, as nothing is ever modified in place.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package avl

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'avl'.
func tracer() tracing.Trace {
	return tracing.Select("avl")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("avl: "+msg, msgargs...)
		panic(msg)
	}
}
