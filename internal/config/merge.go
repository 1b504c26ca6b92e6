package config

import "fmt"

// Merge folds several partial scenes, such as one per file, into one. Family
// declarations, queries and detach lists are concatenated in order; exactly
// one of the parts may define the root node.
func Merge(parts ...*Scene) (*Scene, error) {
	merged := &Scene{}
	for _, p := range parts {
		if p == nil {
			continue
		}
		if p.Root != nil {
			if merged.Root != nil {
				return nil, fmt.Errorf("scene defines more than one root node: %q and %q", merged.Root.Name, p.Root.Name)
			}
			merged.Root = p.Root
		}
		merged.Families = append(merged.Families, p.Families...)
		merged.Queries = append(merged.Queries, p.Queries...)
		merged.Detach = append(merged.Detach, p.Detach...)
	}
	return merged, nil
}
