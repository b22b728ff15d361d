// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// Setup points the default logger at w and sets its level. An empty level
// means DefaultLevel.
func Setup(w io.Writer, level string) error {
	level = strings.TrimSpace(level)
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetReportTimestamp(lvl <= log.DebugLevel)
	log.SetPrefix("plannow")
	return nil
}
