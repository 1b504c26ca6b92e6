/*
Package builder turns a config.Scene into a live host tree with DI contexts
attached, and answers queries against it.

Construction is a multi-phase process:

 1. Node creation: every NodeSpec becomes an inmemorytree.Node, detached from
    any tree. A node with a context block gets a carrier child holding a
    dicontext.Context hook; register and multiregister blocks become helper
    children holding dicontext.Registration and dicontext.Multiregistration
    hooks. The carrier is added first so a helper asking for its owner's own
    context finds it attached.

 2. Attachment: the root is installed in a fresh tree, which fires enter
    notifications top-down. Contexts attach and resolve their parents, and
    helpers register their owners, in that order.

The resulting Session owns the tree and the index. Queries and detach
operations run against it afterwards.
*/
package builder
