/*
Package avltree is the root of a module for persistent, height-balanced search trees.

The tree lives in package persistent/avl; package persistent/avl/avldbg helps
debugging trees, and command cmd/avltool builds and prints trees from the command line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package avltree
