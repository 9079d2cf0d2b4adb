// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

// package build contains build information for the boundcheck module.
package build

import (
	_ "embed"
	"strings"
)

//go:embed version.txt
var version string

// Version of boundcheck.
var Version = strings.TrimSpace(version)
