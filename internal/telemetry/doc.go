// Package telemetry sends anonymous usage events for the CLI. Events are
// fire-and-forget: failures are swallowed, a short timeout bounds the call,
// and nothing here sits on the critical path of any command.
package telemetry
