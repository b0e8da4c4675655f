package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Advisory label constants.
const (
	FatalValue = "Fatal" // Aborts the run
	WarnValue  = "Warn"  // Reported, never blocks
	OKValue    = "OK"    // Nothing to report
)

// Color variables for console output.
var (
	FatalColor = color.New(color.FgRed, color.Bold) // FatalColor represents standard danger.
	WarnColor  = color.New(color.FgYellow)          // WarnColor represents standard caution, not bold.
	OKColor    = color.New(color.FgGreen)           // OKColor represents a clean result.
	InfoColor  = color.New(color.FgCyan)            // InfoColor represents informational output such as paths.
)

// GetColorLabel returns the label colored for console output, or plain when
// colors are disabled.
func GetColorLabel(label string, useColors bool) string {
	if !useColors {
		return label
	}
	switch label {
	case FatalValue:
		return FatalColor.Sprint(label)
	case WarnValue:
		return WarnColor.Sprint(label)
	case OKValue:
		return OKColor.Sprint(label)
	default:
		return InfoColor.Sprint(label)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText truncates a value to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 to leave room for the "..." and at least one character.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
