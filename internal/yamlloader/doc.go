// Package yamlloader loads scene files written in YAML and translates them
// into the format-agnostic config.Scene model. A file may contain several
// documents separated by "---"; each is treated like a separate file.
package yamlloader
