package builder

import (
	"fmt"
	"strings"

	"github.com/vk/nestdi/internal/config"
	"github.com/vk/nestdi/internal/dicontext"
	"github.com/vk/nestdi/internal/hosttree"
	"github.com/vk/nestdi/internal/nodeid"
)

// Result is the outcome of one query.
type Result struct {
	Query *config.QuerySpec
	Found bool
	// Nodes holds the paths of the matched nodes: one for lookups, every
	// collected node in order for collections, the anchor for nearest.
	Nodes   []string
	Context string // logging name of the answering context, if any
	Err     error
}

// String renders the result as a single report line.
func (r Result) String() string {
	q := r.Query
	var head string
	switch q.Kind {
	case config.QueryNearest:
		head = fmt.Sprintf("%s: nearest from %s", q.Name, q.From)
	default:
		target := q.Target
		if q.Kind != config.QueryCollect {
			target = dicontext.Key(q.Target, q.ID).String()
		}
		head = fmt.Sprintf("%s: %s %s from %s", q.Name, q.Kind, target, q.From)
	}

	switch {
	case r.Err != nil:
		return fmt.Sprintf("%s -> error: %v", head, r.Err)
	case q.Kind == config.QueryCollect:
		return fmt.Sprintf("%s -> [%s]", head, strings.Join(r.Nodes, ", "))
	case !r.Found:
		return head + " -> <none>"
	case q.Kind == config.QueryNearest && r.Context != "":
		return fmt.Sprintf("%s -> context at %s (%s)", head, r.Nodes[0], r.Context)
	case q.Kind == config.QueryNearest:
		return fmt.Sprintf("%s -> context at %s", head, r.Nodes[0])
	default:
		return fmt.Sprintf("%s -> %s", head, r.Nodes[0])
	}
}

// Query evaluates q against the live tree. The context answering a lookup or
// collection is the nearest one at or above the query's starting node.
func (s *Session) Query(q *config.QuerySpec) Result {
	res := Result{Query: q}
	from, err := s.Node(q.From)
	if err != nil {
		res.Err = err
		return res
	}
	c, ok := s.index.Nearest(from, false)
	if !ok {
		if q.Kind != config.QueryNearest {
			res.Err = &dicontext.MissingContextError{Node: q.From, Class: from.Class()}
		}
		return res
	}
	res.Context = c.LoggingName()

	switch q.Kind {
	case config.QueryNearest:
		if anchor, ok := c.Anchor(); ok {
			res.Found = true
			res.Nodes = []string{nodePath(anchor)}
		}
	case config.QueryLookup:
		n, err := c.Lookup(q.Target, q.ID)
		if err != nil {
			res.Err = err
			return res
		}
		res.Found = true
		res.Nodes = []string{nodePath(n)}
	case config.QueryTryLookup:
		if n, ok := c.TryLookup(q.Target, q.ID); ok {
			res.Found = true
			res.Nodes = []string{nodePath(n)}
		}
	case config.QueryCollect:
		nodes, err := c.CollectAll(q.Target)
		if err != nil {
			res.Err = err
			return res
		}
		res.Found = len(nodes) > 0
		for _, n := range nodes {
			res.Nodes = append(res.Nodes, nodePath(n))
		}
	default:
		res.Err = fmt.Errorf("unknown query kind %q", q.Kind)
	}
	return res
}

// RunQueries evaluates the queries belonging to one pass, in order.
func (s *Session) RunQueries(queries []*config.QuerySpec, afterDetach bool) []Result {
	var out []Result
	for _, q := range queries {
		if q.AfterDetach != afterDetach {
			continue
		}
		res := s.Query(q)
		s.logger.Debug("Query evaluated.", "query", q.Name, "found", res.Found, "error", res.Err)
		out = append(out, res)
	}
	return out
}

// nodePath renders a node's address, falling back to its name for nodes
// that cannot report a path.
func nodePath(n hosttree.Node) string {
	if p, ok := n.(interface{ Path() nodeid.Path }); ok {
		return p.Path().String()
	}
	return n.Name()
}
