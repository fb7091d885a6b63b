package templates

import "errors"

// ErrUnknownTemplate is returned when a template key is not in the registry.
var ErrUnknownTemplate = errors.New("unknown template")
