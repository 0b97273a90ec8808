package fae

import _ "embed"

// Version is the release of the fae module, read from the VERSION file.
// It may carry a trailing newline.
//
//go:embed VERSION
var Version string
