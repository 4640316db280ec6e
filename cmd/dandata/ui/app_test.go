package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dandata/internal/assist"
)

func testApp() App {
	return NewApp(assist.NewService(nil, nil), NewStyles(LightTheme()))
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_NumberKeyNavigation(t *testing.T) {
	a := testApp()

	cases := []struct {
		key  string
		want Page
	}{
		{"2", PageRegistries},
		{"3", PageVariables},
		{"4", PageLiterature},
		{"5", PageResources},
		{"1", PageDashboard},
	}
	for _, tc := range cases {
		model, _ := a.Update(keyMsg(tc.key))
		a = model.(App)
		if a.page != tc.want {
			t.Errorf("key %q: expected page %d, got %d", tc.key, tc.want, a.page)
		}
	}
}

func TestApp_EscReturnsToDashboard(t *testing.T) {
	a := testApp()
	a.page = PageResources

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEscape})
	a = model.(App)
	if a.page != PageDashboard {
		t.Errorf("expected esc to return to dashboard, got page %d", a.page)
	}
}

func TestApp_EscFromDetailReturnsToList(t *testing.T) {
	a := testApp()
	a.page = PageDetail
	a.detail = newDetailModel("1", a.svc, a.styles)

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEscape})
	a = model.(App)
	if a.page != PageRegistries {
		t.Errorf("expected esc from detail to open registry list, got page %d", a.page)
	}
}

func TestApp_DashboardEnterOpensSelection(t *testing.T) {
	a := testApp()

	// Second dashboard entry is the variable browser.
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyDown})
	a = model.(App)
	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(App)
	if a.page != PageVariables {
		t.Errorf("expected enter on second entry to open variables, got page %d", a.page)
	}
}

func TestApp_TypingCapturesLetterKeys(t *testing.T) {
	a := testApp()
	a.page = PageRegistries

	// Focus the filter; every following letter must narrow it, not
	// navigate.
	model, _ := a.Update(keyMsg("/"))
	a = model.(App)
	if !a.typing() {
		t.Fatal("expected list filter to be capturing text")
	}
	for _, k := range []string{"b", "r"} {
		model, _ = a.Update(keyMsg(k))
		a = model.(App)
	}
	if a.page != PageRegistries {
		t.Errorf("expected letter keys to stay on registries while typing, got page %d", a.page)
	}
	if got := a.registries.filter.Value(); got != "br" {
		t.Errorf("expected filter value %q, got %q", "br", got)
	}
}

func TestApp_FilterCapturesNavigationLetters(t *testing.T) {
	a := testApp()

	// Every letter of "dream" doubles as a navigation or quit key; none
	// may fire once the filter is focused.
	model, _ := a.Update(keyMsg("2"))
	a = model.(App)
	if a.page != PageRegistries {
		t.Fatalf("expected registries page, got %d", a.page)
	}
	model, _ = a.Update(keyMsg("/"))
	a = model.(App)
	for _, k := range []string{"d", "r", "e", "a", "m", "q"} {
		model, _ = a.Update(keyMsg(k))
		a = model.(App)
		if a.page != PageRegistries {
			t.Fatalf("key %q navigated away to page %d", k, a.page)
		}
	}
	if got := a.registries.filter.Value(); got != "dreamq" {
		t.Errorf("expected filter value %q, got %q", "dreamq", got)
	}
}

func TestApp_FirstEscStopsFilteringBeforeLeaving(t *testing.T) {
	a := testApp()
	a.page = PageRegistries

	model, _ := a.Update(keyMsg("/"))
	a = model.(App)
	model, _ = a.Update(keyMsg("bef"))
	a = model.(App)
	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEscape})
	a = model.(App)
	if a.page != PageRegistries {
		t.Errorf("expected first esc to only blur the filter, got page %d", a.page)
	}
	if a.typing() {
		t.Error("expected filter blurred after esc")
	}
	if got := a.registries.filter.Value(); got != "bef" {
		t.Errorf("expected filter text kept after blur, got %q", got)
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEscape})
	a = model.(App)
	if a.page != PageDashboard {
		t.Errorf("expected second esc to leave the page, got page %d", a.page)
	}
}

func TestApp_SelectRegistryOpensDetail(t *testing.T) {
	a := testApp()
	a.page = PageRegistries

	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(App)
	if a.page != PageDetail {
		t.Fatalf("expected enter to open detail page, got page %d", a.page)
	}
	if !a.detail.found {
		t.Error("expected detail page to resolve the selected registry")
	}
}
