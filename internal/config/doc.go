// Package config manages user-level settings stored at ~/.droidconf/config.yaml,
// such as the default build directory segment and namespace capability
// overrides applied to every build description.
package config
