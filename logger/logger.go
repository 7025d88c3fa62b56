package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of the rendering pipeline.
var ProgressLogger = log.New(os.Stdout, "galley.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like malformed
// markup, unsupported CSS properties or URL resolution failures.
var WarningLogger = log.New(os.Stdout, "galley.warning: ", log.Lmsgprefix)
