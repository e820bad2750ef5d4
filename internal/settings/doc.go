// Package settings loads the droidconf.yaml build description. The file is
// validated against an embedded JSON Schema before it is decoded, and
// Description.NewProject turns it into an unevaluated project model.
package settings
