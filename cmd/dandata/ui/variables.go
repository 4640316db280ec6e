package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dandata/internal/assist"
)

// quickChips are one-key example searches, mirroring the variables a
// first-time user is most likely to look for.
var quickChips = []string{"AEL_KOMKOD", "SOC_STATUS", "hospital diagnosis ICD-10"}

// variablesModel is the deep-search panel over DST variable
// documentation.
type variablesModel struct {
	styles Styles

	input    textinput.Model
	spin     spinner.Model
	viewport viewport.Model

	loading bool
	result  *assist.Result

	width  int
	height int
}

func newVariablesModel(styles Styles) variablesModel {
	ti := textinput.New()
	ti.Placeholder = "Enter variable code or name (e.g. 'AEL_KOMKOD', 'SOC_STATUS')"
	ti.Prompt = "> "
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return variablesModel{
		styles:   styles,
		input:    ti,
		spin:     sp,
		viewport: viewport.New(80, 16),
	}
}

func (m *variablesModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.input.Width = min(w-8, 72)
	m.viewport.Width = w - 4
	m.viewport.Height = h - 6
	m.refreshContent()
}

// typing is true whenever the input is focused, so a query's first
// character is never taken by a navigation key.
func (m variablesModel) typing() bool {
	return m.input.Focused()
}

func (m variablesModel) update(msg tea.Msg, svc *assist.Service) (variablesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case variablesResultMsg:
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
		case "esc":
			m.input.Blur()
			return m, nil
		case "/":
			if !m.input.Focused() {
				m.input.Focus()
				return m, textinput.Blink
			}
		case "enter":
			return m.search(svc, m.input.Value())
		case "f1":
			return m.search(svc, quickChips[0])
		case "f2":
			return m.search(svc, quickChips[1])
		case "f3":
			return m.search(svc, quickChips[2])
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m variablesModel) search(svc *assist.Service, q string) (variablesModel, tea.Cmd) {
	q = strings.TrimSpace(q)
	if q == "" {
		// The panel boundary rejects empty queries.
		return m, nil
	}
	m.input.SetValue(q)
	m.loading = true
	m.refreshContent()
	return m, tea.Batch(m.spin.Tick, variablesCmd(svc, q))
}

func (m *variablesModel) refreshContent() {
	s := m.styles
	var sb strings.Builder

	switch {
	case m.loading:
		sb.WriteString(m.spin.View() + " Searching DST documentation...")
	case m.result != nil:
		sb.WriteString(RenderMarkdown(m.result.Text, m.viewport.Width-2, s.Theme.IsDark))
		sb.WriteString(RenderSources(m.result.Sources, s))
	default:
		sb.WriteString(s.Bold.Render("Search Strategy"))
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render(
			"This tool searches the \"Times\" documentation and \"Forskningvariabellister\" on dst.dk.\n" +
				"It works best with specific variable codes (e.g. ALDER, CIVST) or official module names."))
		sb.WriteString("\n\n")
		sb.WriteString(s.Bold.Render("Popular Modules"))
		sb.WriteString("\n")
		sb.WriteString(s.Muted.Render(
			"  Social Statistics (Sociale forhold)\n" +
				"  Health (Landspatientregisteret)\n" +
				"  Labor Market (IDAN/RAS)"))
	}

	m.viewport.SetContent(sb.String())
}

func (m variablesModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Variable Browser"))
	sb.WriteString("  ")
	sb.WriteString(m.styles.Subtitle.Render("Deep search Danish Statistics (DST) documentation."))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[/] type a query  Quick try: [F1] " + quickChips[0] + "  [F2] " + quickChips[1] + "  [F3] " + quickChips[2]))
	sb.WriteString("\n\n")
	sb.WriteString(m.viewport.View())
	return sb.String()
}
