package fixtura

import _ "embed"

// Version is the release of the fixtura module, read from the VERSION file.
//
//go:embed VERSION
var Version string
