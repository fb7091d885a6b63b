package drivers

import "errors"

var (
	// ErrUnsupportedType is returned when a database type key is not in the registry.
	ErrUnsupportedType = errors.New("unsupported database type")

	// ErrNoJDBCDescriptor is returned when a type resolves to the JDBC bridge
	// but the registry carries no JDBC descriptor for it.
	ErrNoJDBCDescriptor = errors.New("no JDBC descriptor for database type")
)
