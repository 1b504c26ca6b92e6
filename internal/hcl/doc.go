// Package hcl loads scene files written in HCL and translates them into the
// format-agnostic config.Scene model.
//
// A scene file may hold any number of family and query blocks, a detach list
// and at most one top-level node block. Node paths in `from` and `detach`
// are written as bare traversals (level.player) or as quoted strings.
package hcl
