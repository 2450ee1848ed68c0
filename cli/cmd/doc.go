// Package cmd implements the confix subcommands.
package cmd
