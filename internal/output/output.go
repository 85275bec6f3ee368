// Package output provides terminal logging and styled status lines.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	caveatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// SetVerbose raises the log level to Debug when v is true.
func SetVerbose(v bool) {
	if v {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	} else {
		logger.SetLevel(log.InfoLevel)
		logger.SetReportTimestamp(false)
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, keyvals ...any) { logger.Debug(msg, keyvals...) }

// Info logs an informational message.
func Info(msg string, keyvals ...any) { logger.Info(msg, keyvals...) }

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) { logger.Warn(msg, keyvals...) }

// Success writes a styled confirmation line to w.
func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

// Caveat writes a styled post-creation note to w.
func Caveat(w io.Writer, msg string) {
	fmt.Fprintln(w, caveatStyle.Render(msg))
}
