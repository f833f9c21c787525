package csp

import "github.com/blang/semver/v4"

// Version identifies this module's release. cmd/cspdemo surfaces it via
// --version.
var Version = semver.MustParse("0.1.0")
