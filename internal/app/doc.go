// Package app contains the conversion lifecycle of bconv. It resolves the
// effective options from built-in defaults, profile files and command-line
// overrides, then detects the input and renders every enabled radix,
// decoupled from any specific entrypoint like a CLI.
package app
