package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type resourceLink struct {
	title string
	desc  string
	url   string
}

var officialResources = []resourceLink{
	{
		title: "Danmarks Statistik (DST)",
		desc:  "The central authority on Danish statistics. Hosts the research scheme.",
		url:   "https://www.dst.dk/en",
	},
	{
		title: "DST Research Services (Forskningsservice)",
		desc:  "Access rules, project setup and the list of data available to researchers.",
		url:   "https://www.dst.dk/en/TilSalg/Forskningsservice",
	},
	{
		title: "Times Documentation",
		desc:  "Variable-level documentation for the registers (Danish).",
		url:   "https://www.dst.dk/da/Statistik/dokumentation/Times",
	},
	{
		title: "eSundhed",
		desc:  "Health data documentation from the Danish Health Data Authority.",
		url:   "https://www.esundhed.dk",
	},
	{
		title: "Statistikbanken",
		desc:  "Public aggregate tables for quick descriptive checks.",
		url:   "https://www.statistikbanken.dk",
	},
}

// resourcesModel is a static page of official documentation links.
type resourcesModel struct {
	styles   Styles
	viewport viewport.Model
}

func newResourcesModel(styles Styles) resourcesModel {
	m := resourcesModel{
		styles:   styles,
		viewport: viewport.New(80, 20),
	}
	m.refreshContent()
	return m
}

func (m *resourcesModel) setSize(w, h int) {
	m.viewport.Width = w - 4
	m.viewport.Height = h - 3
	m.refreshContent()
}

func (m resourcesModel) update(msg tea.Msg) (resourcesModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *resourcesModel) refreshContent() {
	s := m.styles
	var sb strings.Builder
	for i, r := range officialResources {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Bold.Render(r.title))
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render("  " + r.desc))
		sb.WriteString("\n")
		sb.WriteString(s.SourceChip.Render("  " + r.url))
		sb.WriteString("\n")
	}
	m.viewport.SetContent(sb.String())
}

func (m resourcesModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Official Resources"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Subtitle.Render("Documentation and access for Danish registry data."))
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	return sb.String()
}
