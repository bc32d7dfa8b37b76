/*
Package persistent is the home of immutable persistent data structures.

An immutable persistent data structure is never modified in place. Every operation which
would change it yields a new version, and all earlier versions stay valid and observable.

Versions share every part which an operation did not touch (structural sharing). Two versions
differing in a single element typically differ in a handful of nodes only, so keeping many
versions around is cheap. As nothing is ever written after construction, any number of
goroutines may read any number of versions without locking.

Sub-package avl implements ordered sets as height-balanced binary search trees.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
