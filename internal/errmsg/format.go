// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlayerStart   Op = "start player"
	OpStationTune   Op = "tune station"
	OpStreamConfirm Op = "confirm stream"

	// Offline asset cache
	OpAssetsInstall Op = "install offline assets"
	OpAssetsServe   Op = "serve offline assets"
	OpAssetsOpen    Op = "open asset cache"

	// Desktop integration
	OpMPRISStart Op = "start media keys"
	OpNotify     Op = "send notification"

	// Initialization
	OpConfigLoad Op = "load config"
	OpLogSetup   Op = "set up logging"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
