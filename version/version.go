package version

import (
	"fmt"
)

const (
	Version = "0.1.0"
)

// Used for "User-Agent" in HTTP
var VersionString = fmt.Sprintf("galley %s", Version)
