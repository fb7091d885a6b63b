// Package templates holds the static registry of project templates the
// scaffolder can generate. Each template declares its npm scripts, extra
// dependency lists, and the set of files it renders, backed by templates
// embedded at build time.
package templates
