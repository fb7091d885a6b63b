// Package manifest models the package.json file the scaffolder writes into a
// new Quarry app. It provides the manifest type, a writer/reader pair, and
// JSON Schema validation of the generated file.
package manifest
