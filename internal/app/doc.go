// Package app contains the application logic behind the nestdi commands. It
// loads a scene, builds and attaches it, and reports query results or the
// context table, decoupled from the CLI that constructs its Config.
package app
