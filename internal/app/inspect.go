package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/vk/nestdi/internal/ctxlog"
	"github.com/vk/nestdi/internal/dicontext"
)

// Inspect prints every attached context of the freshly built scene with its
// tables, in attach order.
func (a *App) Inspect(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	s, _, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if fams := s.Families(); fams != nil {
		fmt.Fprintf(a.outW, "families: %s\n", strings.Join(fams.Families(), ", "))
	}

	contexts := s.Index().Contexts()
	anchors := make(map[uuid.UUID]string, len(contexts))
	for _, c := range contexts {
		anchors[c.ID()] = c.Snapshot().Anchor
	}
	for _, c := range contexts {
		writeSnapshot(a.outW, c.Snapshot(), anchors)
	}
	return nil
}

// writeSnapshot renders one context. Child and parent contexts are shown by
// their anchor paths.
func writeSnapshot(w io.Writer, snap dicontext.Snapshot, anchors map[uuid.UUID]string) {
	title := "context at " + snap.Anchor
	if snap.LoggingName != "" {
		title += fmt.Sprintf(" (%s)", snap.LoggingName)
	}
	fmt.Fprintln(w, title)

	parent := "<root>"
	if snap.Parent != uuid.Nil {
		parent = anchors[snap.Parent]
	}
	fmt.Fprintf(w, "  parent: %s\n", parent)

	for _, r := range snap.Registered {
		state := ""
		if !r.Live {
			state = " (stale)"
		}
		fmt.Fprintf(w, "  register %s -> %s%s\n", r.Key, r.Node, state)
	}
	for _, f := range snap.Multiregistered {
		fmt.Fprintf(w, "  multiregister %s -> [%s]\n", f.Family, strings.Join(f.Nodes, ", "))
	}
	for _, fk := range snap.ForwardKeys {
		fmt.Fprintf(w, "  forwards %s from [%s]\n", fk.Key, strings.Join(anchorNames(fk.Children, anchors), ", "))
	}
	for _, ff := range snap.ForwardFamilies {
		fmt.Fprintf(w, "  forwards family %s from [%s]\n", ff.Family, strings.Join(anchorNames(ff.Children, anchors), ", "))
	}
}

func anchorNames(ids []uuid.UUID, anchors map[uuid.UUID]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, anchors[id])
	}
	return out
}
