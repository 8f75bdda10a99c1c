package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/statesearch/search"
)

var (
	colorGreen  = lipgloss.Color("35")  // green - success
	colorYellow = lipgloss.Color("220") // amber - warnings
	colorCyan   = lipgloss.Color("36")  // teal - numeric values
	colorDim    = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// summarize renders the one-line result summary shown after every solve.
func summarize(res search.Result) string {
	if !res.Found {
		return fmt.Sprintf("%s %s",
			styleWarning.Render("no solution"),
			styleDim.Render(fmt.Sprintf("(expanded %d layouts)", res.Expanded)))
	}

	cost := strconv.FormatFloat(res.Cost, 'g', -1, 64)

	return fmt.Sprintf("%s cost=%s moves=%s expanded=%s",
		styleSuccess.Render("solved"),
		styleNumber.Render(cost),
		styleNumber.Render(strconv.Itoa(len(res.Path)-1)),
		styleDim.Render(strconv.Itoa(res.Expanded)))
}
