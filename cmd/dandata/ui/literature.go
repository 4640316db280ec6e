package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dandata/internal/assist"
	"dandata/internal/query"
)

// literatureModel searches top economics journals for papers that use a
// given registry, optionally filtered by topic.
type literatureModel struct {
	styles Styles

	registry textinput.Model
	topic    textinput.Model
	spin     spinner.Model
	viewport viewport.Model

	loading bool
	result  *assist.Result

	width  int
	height int
}

func newLiteratureModel(styles Styles) literatureModel {
	reg := textinput.New()
	reg.Placeholder = "Registry name (optional, e.g. 'BEF')"
	reg.Prompt = "Registry: "
	reg.CharLimit = 80

	top := textinput.New()
	top.Placeholder = "Topic (e.g. 'labor supply', 'intergenerational mobility')"
	top.Prompt = "Topic:    "
	top.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return literatureModel{
		styles:   styles,
		registry: reg,
		topic:    top,
		spin:     sp,
		viewport: viewport.New(80, 14),
	}
}

func (m *literatureModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.registry.Width = min(w-16, 60)
	m.topic.Width = min(w-16, 60)
	m.viewport.Width = w - 4
	m.viewport.Height = h - 8
	m.refreshContent()
}

// typing is true whenever either field is focused, so a query's first
// character is never taken by a navigation key.
func (m literatureModel) typing() bool {
	return m.registry.Focused() || m.topic.Focused()
}

func (m literatureModel) update(msg tea.Msg, svc *assist.Service) (literatureModel, tea.Cmd) {
	switch msg := msg.(type) {
	case papersResultMsg:
		m.loading = false
		m.result = &msg.result
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		m.refreshContent()
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			switch {
			case m.registry.Focused():
				m.registry.Blur()
				m.topic.Focus()
			case m.topic.Focused():
				m.topic.Blur()
				m.registry.Focus()
			default:
				m.registry.Focus()
			}
			return m, textinput.Blink
		case "/":
			if !m.typing() {
				m.registry.Focus()
				return m, textinput.Blink
			}
		case "esc":
			m.registry.Blur()
			m.topic.Blur()
			return m, nil
		case "enter":
			// A search with no registry still runs, under the generic
			// administrative-data label.
			name := strings.TrimSpace(m.registry.Value())
			if name == "" {
				name = query.GenericRegistryLabel
			}
			m.loading = true
			m.refreshContent()
			return m, tea.Batch(m.spin.Tick, papersCmd(svc, name, strings.TrimSpace(m.topic.Value())))
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.registry, cmd = m.registry.Update(msg)
	cmds = append(cmds, cmd)
	m.topic, cmd = m.topic.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *literatureModel) refreshContent() {
	s := m.styles
	var sb strings.Builder

	switch {
	case m.loading:
		sb.WriteString(m.spin.View() + " Searching top journals (AER, QJE, JPE, NBER)...")
	case m.result != nil:
		sb.WriteString(RenderMarkdown(m.result.Text, m.viewport.Width-2, s.Theme.IsDark))
		sb.WriteString(RenderSources(m.result.Sources, s))
	default:
		sb.WriteString(s.Muted.Render(
			"Find published research that uses Danish registry data.\n" +
				"Results come from AEA, NBER, CEPR, QJE and JPE."))
	}

	m.viewport.SetContent(sb.String())
}

func (m literatureModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Literature Search"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Subtitle.Render("Papers in top economics journals."))
	sb.WriteString("\n")
	sb.WriteString(m.registry.View())
	sb.WriteString("\n")
	sb.WriteString(m.topic.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[/] edit  tab: switch field  esc: stop typing  enter: search"))
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	return sb.String()
}
