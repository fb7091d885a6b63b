// Package cli defines the quarry command tree. Each command lives in its own
// file and registers itself with the root command in an init function.
package cli
