// Package scaffold creates new Quarry applications. It powers the
// "quarry create" command: it writes the package manifest, installs the
// server and database driver packages, handles the JDBC bridge install hook,
// and renders the chosen template's files with a generated environment.
package scaffold
