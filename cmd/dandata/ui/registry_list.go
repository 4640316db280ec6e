package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dandata/internal/catalog"
)

// registryListModel shows the filterable catalog. Selecting an entry
// returns its registry ID to the app, which opens the detail page.
type registryListModel struct {
	styles   Styles
	filter   textinput.Model
	filtered []catalog.Registry
	cursor   int
	width    int
	height   int
}

func newRegistryListModel(styles Styles) registryListModel {
	ti := textinput.New()
	ti.Placeholder = "Search registries..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return registryListModel{
		styles:   styles,
		filter:   ti,
		filtered: catalog.All(),
	}
}

func (m *registryListModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.filter.Width = min(w-6, 48)
}

// typing is true whenever the filter is focused, so every keystroke of
// a query reaches the input instead of the navigation keys.
func (m registryListModel) typing() bool {
	return m.filter.Focused()
}

func (m registryListModel) update(msg tea.Msg) (registryListModel, string, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.filter.Blur()
			return m, "", nil
		case "/":
			if !m.filter.Focused() {
				m.filter.Focus()
				return m, "", textinput.Blink
			}
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, "", nil
		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, "", nil
		case "enter":
			if m.cursor < len(m.filtered) {
				return m, m.filtered[m.cursor].ID, nil
			}
			return m, "", nil
		}
	}

	var cmd tea.Cmd
	before := m.filter.Value()
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.filtered = catalog.Filter(m.filter.Value())
		if m.cursor >= len(m.filtered) {
			m.cursor = 0
		}
	}
	return m, "", cmd
}

func (m registryListModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Registries"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Subtitle.Render("Browse available Danish administrative datasets."))
	sb.WriteString("\n")
	sb.WriteString(m.filter.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(m.styles.Muted.Render("No registries match."))
		return sb.String()
	}

	for i, r := range m.filtered {
		// Pad before styling: ANSI escapes would break %-*s alignment.
		line := m.styles.Code.Render(fmt.Sprintf("%-11s", r.Code)) +
			fmt.Sprintf("%-46s", r.Name) +
			m.styles.Category.Render(string(r.Category))
		if i == m.cursor {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	hint := "[/] filter  up/down: choose  enter: details"
	if m.filter.Focused() {
		hint = "type to filter, esc to stop, enter for details"
	}
	sb.WriteString(m.styles.Muted.Render(hint))
	return sb.String()
}
