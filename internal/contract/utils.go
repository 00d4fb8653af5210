package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/snally-dev/camp-milestones/schema"
)

// Color variables for console output.
var (
	ReachedColor    = color.New(color.FgGreen, color.Bold) // crossed thresholds stand out
	ProjectedColor  = color.New(color.FgCyan)
	OutOfRangeColor = color.New(color.FgYellow)
	NoPaceColor     = color.New(color.FgMagenta)
	UndefinedColor  = color.New(color.FgRed, color.Bold)
)

// GetColorLabel returns a colored text label for console output (table).
// It uses schema.GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(status schema.MilestoneStatus) string {
	text := schema.GetPlainLabel(status)

	switch status {
	case schema.ReachedStatus:
		return ReachedColor.Sprint(text)
	case schema.ProjectedStatus:
		return ProjectedColor.Sprint(text)
	case schema.OutOfRangeStatus:
		return OutOfRangeColor.Sprint(text)
	case schema.NoPaceStatus:
		return NoPaceColor.Sprint(text)
	default:
		return UndefinedColor.Sprint(text)
	}
}

// GetStatusEmoji returns the emoji shown next to a milestone in text output.
func GetStatusEmoji(status schema.MilestoneStatus) string {
	switch status {
	case schema.ReachedStatus:
		return "🏕️"
	case schema.ProjectedStatus:
		return "🥾"
	case schema.OutOfRangeStatus:
		return "⛔"
	default:
		return "❔"
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error message and exits the program.
func LogFatal(msg string, err error) {
	Logger().Error(msg, errorField(err))
	_ = Logger().Sync()
	exitFunc(1)
}

// LogWarn logs a warning message without exiting.
func LogWarn(msg string, err error) {
	Logger().Warn(msg, errorField(err))
}

// ParseBoolString parses a string into a boolean value.
// Accepts: yes/no, true/false, 1/0 (case insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
