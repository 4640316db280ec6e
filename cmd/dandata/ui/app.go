package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dandata/internal/assist"
)

// Page identifies one view of the explorer.
type Page int

const (
	PageDashboard Page = iota
	PageRegistries
	PageDetail
	PageVariables
	PageLiterature
	PageResources
)

// App is the root bubbletea model. It owns page routing and window
// sizing; each page keeps its own state, including its panel-local
// result slot.
type App struct {
	svc    *assist.Service
	styles Styles

	page   Page
	width  int
	height int

	dashboard  dashboardModel
	registries registryListModel
	detail     detailModel
	variables  variablesModel
	literature literatureModel
	resources  resourcesModel
}

// NewApp assembles the explorer around an injected assist service.
func NewApp(svc *assist.Service, styles Styles) App {
	return App{
		svc:        svc,
		styles:     styles,
		page:       PageDashboard,
		dashboard:  newDashboardModel(styles),
		registries: newRegistryListModel(styles),
		variables:  newVariablesModel(styles),
		literature: newLiteratureModel(styles),
		resources:  newResourcesModel(styles),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.registries.setSize(msg.Width, a.contentHeight())
		a.detail.setSize(msg.Width, a.contentHeight())
		a.variables.setSize(msg.Width, a.contentHeight())
		a.literature.setSize(msg.Width, a.contentHeight())
		a.resources.setSize(msg.Width, a.contentHeight())
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			// A focused input swallows the first esc to blur itself.
			if a.typing() {
				return a.routeToPage(msg)
			}
			switch a.page {
			case PageDashboard:
				return a, tea.Quit
			case PageDetail:
				a.page = PageRegistries
			default:
				a.page = PageDashboard
			}
			return a, nil
		}
		if !a.typing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1", "d":
				a.page = PageDashboard
				return a, nil
			case "2", "r":
				a.page = PageRegistries
				return a, nil
			case "3", "v":
				a.page = PageVariables
				return a, nil
			case "4", "l":
				a.page = PageLiterature
				return a, nil
			case "5", "o":
				a.page = PageResources
				return a, nil
			}
		}
	}

	return a.routeToPage(msg)
}

// typing reports whether the focused page is capturing text, in which
// case plain letter keys belong to the input, not navigation.
func (a App) typing() bool {
	switch a.page {
	case PageRegistries:
		return a.registries.typing()
	case PageDetail:
		return a.detail.typing()
	case PageVariables:
		return a.variables.typing()
	case PageLiterature:
		return a.literature.typing()
	default:
		return false
	}
}

func (a App) routeToPage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.page {
	case PageDashboard:
		var target Page
		a.dashboard, target, cmd = a.dashboard.update(msg)
		if target != PageDashboard {
			a.page = target
		}
	case PageRegistries:
		var selected string
		a.registries, selected, cmd = a.registries.update(msg)
		if selected != "" {
			a.detail = newDetailModel(selected, a.svc, a.styles)
			a.detail.setSize(a.width, a.contentHeight())
			a.page = PageDetail
		}
	case PageDetail:
		a.detail, cmd = a.detail.update(msg)
	case PageVariables:
		a.variables, cmd = a.variables.update(msg, a.svc)
	case PageLiterature:
		a.literature, cmd = a.literature.update(msg, a.svc)
	case PageResources:
		a.resources, cmd = a.resources.update(msg)
	}
	return a, cmd
}

func (a App) contentHeight() int {
	// Header and footer each take one line plus padding.
	h := a.height - 4
	if h < 5 {
		h = 5
	}
	return h
}

func (a App) View() string {
	header := a.styles.Header.Width(max(a.width, 0)).Render("DanData Hub · Danish Registry Explorer")

	var body string
	switch a.page {
	case PageDashboard:
		body = a.dashboard.view()
	case PageRegistries:
		body = a.registries.view()
	case PageDetail:
		body = a.detail.view()
	case PageVariables:
		body = a.variables.view()
	case PageLiterature:
		body = a.literature.view()
	case PageResources:
		body = a.resources.view()
	}

	footer := a.styles.Footer.Render(a.footerHint())

	return lipgloss.JoinVertical(lipgloss.Left, header, a.styles.Content.Render(body), footer)
}

func (a App) footerHint() string {
	base := "[1] Home  [2] Registries  [3] Variables  [4] Literature  [5] Resources  [esc] Back  [ctrl+c] Quit"
	if a.typing() {
		return fmt.Sprintf("%s  (typing)", base)
	}
	return base
}
