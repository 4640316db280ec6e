package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"dandata/internal/assist"
)

// RenderMarkdown renders AI answer markdown (tables included) for the
// terminal. On renderer failure the raw markdown is returned so the
// answer is never lost.
func RenderMarkdown(md string, width int, dark bool) string {
	if width < 20 {
		width = 20
	}
	style := glamour.WithStandardStyle("light")
	if dark {
		style = glamour.WithStandardStyle("dark")
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// RenderSources renders the citation chip list shown under an answer.
// An empty source list renders nothing.
func RenderSources(sources []assist.Source, styles Styles) string {
	if len(sources) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(styles.Muted.Render("SOURCES FOUND"))
	sb.WriteString("\n")
	for _, s := range sources {
		chip := fmt.Sprintf("%s\n%s",
			styles.Bold.Render(s.Title),
			styles.Muted.Render(s.URI))
		sb.WriteString(styles.SourceChip.Render(chip))
		sb.WriteString("\n")
	}
	return sb.String()
}
