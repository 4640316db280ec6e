package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"dandata/internal/assist"
	"dandata/internal/catalog"
)

// detailModel shows one registry: description, key variables, featured
// research, plus the two AI panels scoped to it (registry assistant and
// paper finder). Each panel owns a single result slot; a later answer
// simply overwrites an earlier one.
type detailModel struct {
	styles Styles
	svc    *assist.Service
	reg    catalog.Registry
	found  bool

	viewport viewport.Model
	question textinput.Model
	spin     spinner.Model

	explainLoading bool
	explainResult  *assist.Result
	papersLoading  bool
	papersResult   *assist.Result

	width  int
	height int
}

func newDetailModel(registryID string, svc *assist.Service, styles Styles) detailModel {
	reg, found := catalog.ByID(registryID)

	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("Ask about %s...", reg.Code)
	ti.Prompt = "? "
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := detailModel{
		styles:   styles,
		svc:      svc,
		reg:      reg,
		found:    found,
		viewport: viewport.New(80, 20),
		question: ti,
		spin:     sp,
	}
	m.refreshContent()
	return m
}

func (m *detailModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w - 4
	m.viewport.Height = h - 4
	m.question.Width = min(w-8, 72)
	m.refreshContent()
}

func (m detailModel) typing() bool {
	return m.question.Focused()
}

func (m detailModel) update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case explainResultMsg:
		m.explainLoading = false
		m.explainResult = &msg.result
		m.refreshContent()
		return m, nil

	case papersResultMsg:
		m.papersLoading = false
		m.papersResult = &msg.result
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		if !m.explainLoading && !m.papersLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.question.Focused() {
			switch msg.String() {
			case "esc":
				m.question.Blur()
				return m, nil
			case "enter":
				q := strings.TrimSpace(m.question.Value())
				if q == "" {
					// Empty questions never reach the service.
					return m, nil
				}
				m.question.SetValue("")
				m.question.Blur()
				m.explainLoading = true
				m.refreshContent()
				return m, tea.Batch(m.spin.Tick, explainCmd(m.svc, m.reg.Code, q))
			}
			var cmd tea.Cmd
			m.question, cmd = m.question.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "a":
			m.question.Focus()
			return m, textinput.Blink
		case "p":
			m.papersLoading = true
			m.refreshContent()
			return m, tea.Batch(m.spin.Tick, papersCmd(m.svc, m.reg.Name, ""))
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *detailModel) refreshContent() {
	if !m.found {
		m.viewport.SetContent(m.styles.Error.Render("Registry not found"))
		return
	}

	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render(fmt.Sprintf("%s (%s)", m.reg.Name, m.reg.Code)))
	sb.WriteString("\n")
	sb.WriteString(s.Category.Render(string(m.reg.Category)))
	sb.WriteString("   ")
	sb.WriteString(s.Muted.Render("Docs: " + m.reg.DocumentationURL))
	sb.WriteString("\n\n")
	sb.WriteString(m.reg.Description)
	sb.WriteString("\n\n")

	sb.WriteString(s.Bold.Render("Key Variables"))
	sb.WriteString("\n")
	for _, v := range m.reg.KeyVariables {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", s.Code.Render(fmt.Sprintf("%-16s", v.Name)), v.Description))
	}
	sb.WriteString(s.Muted.Render("  (subset of key variables; use the assistant to find specific ones)"))
	sb.WriteString("\n\n")

	sb.WriteString(s.Bold.Render("Featured Research"))
	sb.WriteString("\n")
	if len(m.reg.Papers) == 0 {
		sb.WriteString(s.Muted.Render("  No featured papers listed yet. Press p to search the literature."))
		sb.WriteString("\n")
	}
	for _, p := range m.reg.Papers {
		sb.WriteString("  " + s.Bold.Render(p.Title) + "\n")
		meta := p.Authors
		if p.Year != "" {
			meta += " (" + p.Year + ")"
		}
		if p.Journal != "" {
			meta += " - " + p.Journal
		}
		sb.WriteString("  " + s.Muted.Render(meta) + "\n")
		sb.WriteString("  " + s.Muted.Render(p.URL) + "\n")
	}
	sb.WriteString("\n")

	if m.papersLoading {
		sb.WriteString(m.spin.View() + " Searching top journals...\n\n")
	} else if m.papersResult != nil {
		sb.WriteString(s.Bold.Render("Literature Search"))
		sb.WriteString("\n")
		sb.WriteString(RenderMarkdown(m.papersResult.Text, m.viewport.Width-2, s.Theme.IsDark))
		sb.WriteString(RenderSources(m.papersResult.Sources, s))
		sb.WriteString("\n")
	}

	if m.explainLoading {
		sb.WriteString(m.spin.View() + " Consulting the registry assistant...\n")
	} else if m.explainResult != nil {
		sb.WriteString(s.Bold.Render("Assistant"))
		sb.WriteString("\n")
		sb.WriteString(RenderMarkdown(m.explainResult.Text, m.viewport.Width-2, s.Theme.IsDark))
		sb.WriteString(RenderSources(m.explainResult.Sources, s))
	}

	m.viewport.SetContent(sb.String())
}

func (m detailModel) view() string {
	var sb strings.Builder
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.question.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("[a] ask assistant  [p] find papers  [esc] back  scroll with up/down"))
	return sb.String()
}
