// Package prompt provides the interactive terminal implementation of the
// scaffolder's chooser capability.
package prompt
