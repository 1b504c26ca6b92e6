// Package config defines the format-agnostic scene model and the Loader
// interface that format-specific packages implement.
//
// A Scene describes a host tree to build (nodes, the DI contexts mounted on
// them, and the registration helpers placed under producers), the capability
// families the session accepts, and the queries to evaluate once the tree is
// live. The HCL and YAML loaders both translate into this model so that the
// scene builder and the application never see a concrete file format.
package config
