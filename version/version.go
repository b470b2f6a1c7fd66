// Package version defines the version of po-fill-helper.
package version

// Version of po-fill-helper.
var Version = "0.2.0"
