package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/PriKalra/priyata-universe/internal/content"
)

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	metaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	excerptStyle = lipgloss.NewStyle().
			PaddingLeft(5).
			Foreground(colorDim)
)

func printItems(items []content.Item) {
	for i, item := range items {
		meta := item.Date
		if item.Kind == content.KindAudio && item.AudioLength != "" {
			meta = fmt.Sprintf("%s · %s", item.Date, item.AudioLength)
		}
		fmt.Printf("%3d. %s  %s  %s\n",
			i+1,
			titleStyle.Render(item.Title),
			sourceStyle.Render(item.Source),
			metaStyle.Render(meta),
		)
		if item.Excerpt != "" {
			fmt.Println(excerptStyle.Render(item.Excerpt))
		}
	}
}
