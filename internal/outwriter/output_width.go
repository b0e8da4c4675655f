package outwriter

import (
	"os"

	"github.com/huangsam/concord/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableCountryWidth calculates the maximum width for the country column in
// table output based on terminal width.
func GetMaxTableCountryWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + three scores + mean + weighted, with borders and padding
	baseWidth := 6 + 5*10 + 20

	available := termWidth - baseWidth
	if available < 10 {
		return 10
	}
	if available > 40 {
		return 40
	}
	return available
}
