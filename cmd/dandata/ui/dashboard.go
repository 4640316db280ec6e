package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type dashboardEntry struct {
	title string
	desc  string
	page  Page
}

type dashboardModel struct {
	styles  Styles
	entries []dashboardEntry
	cursor  int
}

func newDashboardModel(styles Styles) dashboardModel {
	return dashboardModel{
		styles: styles,
		entries: []dashboardEntry{
			{
				title: "Comprehensive Data",
				desc:  "Browse population, labor, health and education registries covering the entire Danish population.",
				page:  PageRegistries,
			},
			{
				title: "Variable Browser",
				desc:  "Drill down into key variables like income (IND), employment (IDAN), and demographics.",
				page:  PageVariables,
			},
			{
				title: "Literature Search",
				desc:  "Find academic papers and economic studies that utilize specific datasets for your research.",
				page:  PageLiterature,
			},
			{
				title: "Resources",
				desc:  "Official DST documentation links and access guidance.",
				page:  PageResources,
			},
		},
	}
}

func (m dashboardModel) update(msg tea.Msg) (dashboardModel, Page, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.entries[m.cursor].page, nil
		}
	}
	return m, PageDashboard, nil
}

func (m dashboardModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Welcome to DanData Hub"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render(
		"The explorer for Danish Statistics (DST) micro-data registries. Navigate variable\n" +
			"lists, access official documentation, and discover relevant economic literature."))
	sb.WriteString("\n\n")

	for i, e := range m.entries {
		title := e.title
		if i == m.cursor {
			title = m.styles.Selected.Render("> " + title)
		} else {
			title = m.styles.Bold.Render("  " + title)
		}
		sb.WriteString(title)
		sb.WriteString("\n")
		sb.WriteString("  " + m.styles.Muted.Render(e.desc))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.styles.Muted.Render("up/down to choose, enter to open"))
	return sb.String()
}
