// Package config defines the format-agnostic profile of default conversion
// options, along with the Loader interface for reading profiles from files.
//
// A Profile only carries the options a file actually sets, so several
// profiles and the command-line flags can be layered on top of each other.
// Concrete loaders for HCL and YAML live in separate packages.
package config
