package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"dandata/internal/assist"
)

// Result messages are delivered per panel so concurrent queries on
// different panels never cross. Within one panel, whichever in-flight
// query resolves last overwrites the displayed result (no coalescing,
// no cancellation of superseded calls).

type explainResultMsg struct {
	result assist.Result
}

type papersResultMsg struct {
	result assist.Result
}

type variablesResultMsg struct {
	result assist.Result
}

func explainCmd(svc *assist.Service, code, question string) tea.Cmd {
	return func() tea.Msg {
		return explainResultMsg{result: svc.ExplainRegistry(context.Background(), code, question)}
	}
}

func papersCmd(svc *assist.Service, registryName, topic string) tea.Cmd {
	return func() tea.Msg {
		return papersResultMsg{result: svc.FindRelatedPapers(context.Background(), registryName, topic)}
	}
}

func variablesCmd(svc *assist.Service, query string) tea.Cmd {
	return func() tea.Msg {
		return variablesResultMsg{result: svc.SearchVariables(context.Background(), query)}
	}
}
