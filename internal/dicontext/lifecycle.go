package dicontext

import (
	"github.com/google/uuid"
	"github.com/vk/nestdi/internal/hosttree"
)

// Entered attaches the context. n is the host node carrying the context; its
// parent is the anchor. The parent context is the nearest context strictly
// above the anchor, and it receives this context's forwarding declarations.
// Child contexts that stayed attached while this one was away are adopted
// again.
func (c *Context) Entered(n hosttree.Node) {
	anchor, ok := n.Parent()
	if !ok {
		c.logger.Warn("DI context mounted at the tree root has no anchor; ignoring it.", "node", n.Name())
		return
	}
	if err := c.index.insert(anchor, c); err != nil {
		c.logger.Error("DI context not attached.", "error", err)
		return
	}

	c.node = n
	c.anchor = anchor
	c.attached = true
	c.parentID = uuid.Nil

	defer c.adoptChildren()

	parent, ok := c.index.Nearest(anchor, true)
	if !ok {
		c.logger.Debug("DI context attached as a root context.", "anchor", describe(anchor))
		return
	}
	c.parentID = parent.id
	parent.addChildForwarding(c.id, c.cfg.ReRegister, c.cfg.ReMultiregister)
	c.logger.Debug("DI context attached.",
		"anchor", describe(anchor),
		"parent_context", parent.id.String(),
		"re_register", len(c.cfg.ReRegister),
		"re_multiregister", len(c.cfg.ReMultiregister),
	)
}

// adoptChildren re-resolves the parent of every attached context that still
// names c as its parent. A child whose nearest context is c gets its
// forwarding declarations pushed again; one that c no longer encloses moves
// to whatever context does.
func (c *Context) adoptChildren() {
	for _, child := range c.index.childrenOf(c) {
		child.parentID = uuid.Nil
		parent, ok := c.index.Nearest(child.anchor, true)
		if !ok {
			c.logger.Debug("Child context left without a parent.", "child_context", child.id.String())
			continue
		}
		child.parentID = parent.id
		parent.addChildForwarding(child.id, child.cfg.ReRegister, child.cfg.ReMultiregister)
		c.logger.Debug("Child context re-adopted.", "child_context", child.id.String(), "parent_context", parent.id.String())
	}
}

// Exited detaches the context: it leaves the index, withdraws its forwarding
// entries from the parent and drops the entries its children pushed. Child
// contexts that stay attached keep naming this context as their parent; the
// name resolves to nothing until it re-enters. Local registrations are kept;
// producers unregister themselves when they leave.
func (c *Context) Exited(n hosttree.Node) {
	if !c.attached {
		return
	}
	if parent := c.parentContext(); parent != nil {
		removed := parent.removeChildForwarding(c.id)
		c.logger.Debug("Withdrew forwarding entries from parent context.", "parent_context", parent.id.String(), "entries", removed)
	}
	c.childrenForKey = make(map[RegistrationKey]*idSet)
	c.childrenForFamily = make(map[string]*idSet)

	c.index.remove(c)
	c.logger.Debug("DI context detached.", "anchor", describe(c.anchor))

	c.node = nil
	c.anchor = nil
	c.parentID = uuid.Nil
	c.attached = false
}
