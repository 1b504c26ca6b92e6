package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single node name.
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// isValidSegmentName rejects names that are syntactically fine but would be
// confusing in diagnostics.
func isValidSegmentName(name string) bool {
	return name != "-" && name != "_"
}

// ValidateName checks that a single node name can appear in a path.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("node name cannot be empty")
	}
	if !segmentRegex.MatchString(name) {
		return fmt.Errorf("invalid node name: %q", name)
	}
	if !isValidSegmentName(name) {
		return fmt.Errorf("reserved node name: %q", name)
	}
	return nil
}

// Parse creates a Path from its canonical string representation.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("path cannot be empty")
	}

	var p Path
	for _, seg := range strings.Split(raw, Separator) {
		if seg == "" {
			return Path{}, fmt.Errorf("path %q contains empty segment", raw)
		}
		if err := ValidateName(seg); err != nil {
			return Path{}, fmt.Errorf("path %q: %w", raw, err)
		}
		p.Segments = append(p.Segments, seg)
	}
	return p, nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}
