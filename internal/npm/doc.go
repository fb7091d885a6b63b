// Package npm wraps the npm and node binaries for the scaffolder: dependency
// installation in a target project directory and a minimum Node.js version
// gate. All invocations are blocking subprocess calls.
package npm
