// Package drivers holds the static registry of database types a scaffolded
// Quarry app can connect to. It maps each type key to the npm driver
// package(s) to install, the environment variables the driver reads, and,
// for types served through the generic JDBC bridge, the Maven coordinate
// the post-install hook resolves.
package drivers
