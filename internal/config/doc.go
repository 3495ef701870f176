// Package config provides configuration loading, merging, and validation
// for go-story-keeper.
//
// Configuration is assembled from command-line flags, environment
// variables, an optional JSON file and built-in defaults, merged with
// mergo so that the first source providing a non-zero value wins.
//
// The main entry point is [GetClientConfig], which returns the validated
// runtime view used by the client.
package config
