package assist

// Intent selects one of the three fixed query use-cases. Each intent
// has its own prompt template, apology string, no-result fallback and
// source-title placeholder; the per-intent wording is part of the user
// contract and must stay distinct.
type Intent int

const (
	IntentExplain Intent = iota
	IntentPapers
	IntentVariables
)

func (i Intent) String() string {
	switch i {
	case IntentExplain:
		return "explain"
	case IntentPapers:
		return "papers"
	case IntentVariables:
		return "variables"
	default:
		return "unknown"
	}
}

// apology is shown when the gateway call itself failed.
func (i Intent) apology() string {
	switch i {
	case IntentPapers:
		return "Unable to fetch papers. Please check your API key."
	case IntentVariables:
		return "Unable to search variables right now."
	default:
		return "Error processing request."
	}
}

// noResults is shown when the provider answered with no usable text.
func (i Intent) noResults() string {
	switch i {
	case IntentPapers:
		return "No specific high-quality papers found matching these criteria."
	case IntentVariables:
		return "No variables found."
	default:
		return "No info available."
	}
}

// sourceTitle is the placeholder for a cited source without a title.
func (i Intent) sourceTitle() string {
	switch i {
	case IntentPapers:
		return "Source"
	case IntentVariables:
		return "DST Documentation"
	default:
		return "Web Source"
	}
}
