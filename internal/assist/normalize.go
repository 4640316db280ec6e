package assist

import "dandata/internal/gateway"

// Source is one web citation attached to an answer.
type Source struct {
	Title string
	URI   string
}

// Result is the sole value a panel receives for a query. Text is never
// empty and Sources is never nil; see Normalize.
type Result struct {
	Text    string
	Sources []Source
}

// Normalize converts a provider response or gateway error into a
// displayable Result. It is the terminal error-absorbing stage and
// never fails:
//
//   - a gateway error becomes the intent's fixed apology with no sources;
//   - empty or absent answer text becomes the intent's no-result string;
//   - grounding chunks missing at any level normalize to zero sources;
//   - chunks without a web reference are dropped silently;
//   - a cited source missing its title or URI gets the intent's
//     placeholder title or "#".
//
// Duplicate sources from the provider pass through unchanged, as do
// malformed URIs.
func Normalize(intent Intent, resp *gateway.Response, err error) Result {
	if err != nil {
		return Result{Text: intent.apology(), Sources: []Source{}}
	}

	text := resp.Text()
	if text == "" {
		text = intent.noResults()
	}

	sources := []Source{}
	for _, chunk := range resp.Chunks() {
		if chunk.Web == nil {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = intent.sourceTitle()
		}
		uri := chunk.Web.URI
		if uri == "" {
			uri = "#"
		}
		sources = append(sources, Source{Title: title, URI: uri})
	}

	return Result{Text: text, Sources: sources}
}
