// Package backfill sets a missing namespace on a project's android extension
// from the project's group. Older library plugins never declared a namespace,
// and current Android tooling refuses to build without one.
//
// The patch is best effort. Projects without an android extension, extensions
// without a namespace property and rejected writes are all silently skipped,
// and the configuration pass always continues.
package backfill
