// Package cli wires the confix command-line interface: flag parsing,
// logger configuration, optional profiling, and subcommand dispatch.
package cli
