/*
Package nodeid provides the structured representation of a node's position
in the host tree, based on the canonical format `path`.

The format is a dot-separated sequence of node names from the tree root,
e.g., `world.level.hud.camera`.

Node names must be unique among siblings for a path to be unambiguous. This
package centralizes formatting and parsing; resolving a path against a live
tree is the job of the tree implementation.
*/
package nodeid
