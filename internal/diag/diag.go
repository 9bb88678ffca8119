// Package diag provides the optional debug logger. The practice view owns
// the terminal, so diagnostics go to a file rather than stderr.
package diag

import (
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared debug logger. It discards everything until EnableFile
// is called.
var Logger = clog.NewWithOptions(io.Discard, clog.Options{
	ReportTimestamp: true,
})

// EnableFile routes debug logging to the given file, creating parent
// directories as needed.
func EnableFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Logger.SetOutput(f)
	Logger.SetLevel(clog.DebugLevel)
	return nil
}
