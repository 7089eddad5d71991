// Package report is the failure side channel for the TUI client. A failed
// operation never crashes the view and never surfaces as a thrown error;
// it lands here, and the view keeps its prior known-good state.
package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Reporter writes operation failures to a log file outside the terminal.
// All methods are safe on a Reporter that failed to open its file.
type Reporter struct {
	log   *log.Logger
	debug bool
}

// New opens a reporter writing to logPath. When the file cannot be opened
// the reporter silently drops everything; reporting must never be a new
// failure mode.
func New(logPath string) *Reporter {
	r := &Reporter{debug: os.Getenv("WISHT_DEBUG") == "1"}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return r
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return r
	}
	r.log = log.New(f, "", log.LstdFlags)
	return r
}

// DefaultLogPath returns where the client log lives
func DefaultLogPath(dataDir string) string {
	return filepath.Join(dataDir, "client.log")
}

// Failure records a failed operation
func (r *Reporter) Failure(op string, err error) {
	if r == nil || r.log == nil {
		return
	}
	r.log.Printf("%s failed: %v", op, err)
}

// Debugf records diagnostics, only when WISHT_DEBUG=1
func (r *Reporter) Debugf(format string, args ...interface{}) {
	if r == nil || r.log == nil || !r.debug {
		return
	}
	r.log.Print("debug: " + fmt.Sprintf(format, args...))
}
