package common

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// VerboseEnabled controls whether verbose output is shown
	VerboseEnabled = false
	// LogFile is the path every Info/Verbose/Error/Warning call also
	// appends to (empty means stdout/stderr only). cmd/root.go wires this
	// to the --log-file flag so a `batch` run over many puzzles leaves a
	// plain-text trail behind once the spinner has cleared the terminal.
	LogFile = ""

	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
)

// writeToLogFile appends message to LogFile if one is set. Log-file writes
// are best-effort: a failure here must never stop the solve/batch run that
// triggered it, so errors are swallowed.
func writeToLogFile(message string) {
	if LogFile != "" {
		file, err := os.OpenFile(LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			defer file.Close()
			fmt.Fprintln(file, message)
		}
	}
}

// Info prints a message to stdout (always shown, regardless of verbose mode)
func Info(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Println(message)
	writeToLogFile(message)
}

// InfoNoNewline prints a message to stdout without a newline
func InfoNoNewline(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Print(message)
	writeToLogFile(message)
}

// Verbose prints a message only when verbose mode is enabled, e.g. the
// puzzle size cmd/solve reports after loading a file.
func Verbose(format string, args ...interface{}) {
	if VerboseEnabled {
		message := fmt.Sprintf("[VERBOSE] "+format, args...)
		fmt.Println(message)
		writeToLogFile(message)
	}
}

// Debug is an alias for Verbose for semantic clarity in code
func Debug(format string, args ...interface{}) {
	Verbose(format, args...)
}

// Error prints a red error message to stderr (always shown). The log file
// gets the plain, uncolored text.
func Error(format string, args ...interface{}) {
	message := fmt.Sprintf("ERROR: "+format, args...)
	fmt.Fprintln(os.Stderr, errorColor.Sprint(message))
	writeToLogFile(message)
}

// Warning prints a yellow warning message (always shown). The log file
// gets the plain, uncolored text.
func Warning(format string, args ...interface{}) {
	message := fmt.Sprintf("WARNING: "+format, args...)
	fmt.Println(warningColor.Sprint(message))
	writeToLogFile(message)
}
