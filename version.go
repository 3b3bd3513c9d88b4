package typecheck

import _ "embed"

// Version is the release version of typecheck.
//
//go:embed VERSION
var Version string
