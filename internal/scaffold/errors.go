package scaffold

import "errors"

var (
	// ErrProjectExists is returned when the target directory already exists.
	// The pipeline performs no side effects after reporting it.
	ErrProjectExists = errors.New("project directory already exists")

	// ErrEmptyProjectName is returned when no project name was supplied.
	ErrEmptyProjectName = errors.New("project name must not be empty")
)
