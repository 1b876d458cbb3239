package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr so rendered
// help on stdout stays clean for piping.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: false,
	Prefix:          "helpctl",
})
