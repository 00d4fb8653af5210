package outwriter

import (
	"os"

	"github.com/snally-dev/camp-milestones/core/calendar"
	"github.com/snally-dev/camp-milestones/internal/contract"
	"golang.org/x/term"
)

const (
	defaultTermWidth = 80 // Conservative default for narrow terminals and CI
	longDateMinWidth = 72 // Milestone + long Date + Status + When with borders/padding
)

// getTerminalWidth returns the width override or the detected terminal width.
func getTerminalWidth(cfg *contract.Config) int {
	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		return cfg.Width
	}

	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return defaultTermWidth
	}
	return detectedWidth
}

// dateFormatter picks long-form dates when the table has room for them and ISO dates otherwise.
func dateFormatter(cfg *contract.Config) func(calendar.Date) string {
	if getTerminalWidth(cfg) < longDateMinWidth {
		return calendar.Date.String
	}
	locale := cfg.Locale
	return func(d calendar.Date) string {
		return calendar.FormatLong(d, locale)
	}
}
