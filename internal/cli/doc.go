// Package cli defines the Cobra command tree for the droidconf CLI. Each file
// in this package registers one top-level command (evaluate, layout, clean,
// etc.) with the root command. Commands delegate to internal packages for the
// build model and only handle flags and output formatting.
package cli
