// Package query builds the prompts sent to the AI gateway for the three
// search intents: explaining a registry, finding related literature, and
// looking up variable documentation.
//
// All builders are pure string construction. The domain allow-lists and
// output-format instructions live here so the three panels cannot drift
// apart in prompt quality. Input validation is a caller concern: the
// panels reject empty questions before calling, and the paper-search
// caller substitutes GenericRegistryLabel for a missing registry name.
package query

import "fmt"

// GenericRegistryLabel is what callers pass to PaperSearchPrompt when no
// specific registry is selected.
const GenericRegistryLabel = "Administrative Data"

// paperSearchDomains restricts literature search to the top economics
// outlets: AEA journals, NBER, CEPR and QJE (plus JPE on the same
// allow-list as the original curation).
const paperSearchDomains = `(site:aeaweb.org OR site:nber.org OR site:cepr.org OR site:academic.oup.com/qje OR site:journals.uchicago.edu/tocs/jpe)`

// variableSearchDomains restricts variable lookup to the official DST
// documentation sub-sites.
const variableSearchDomains = `site:dst.dk/da/Statistik/dokumentation/Times OR site:dst.dk/extranet/forskningvariabellister OR site:esundhed.dk`

// ExplainPrompt builds the prompt for answering a question about one
// registry. registryCode must be non-empty; userQuestion is embedded
// verbatim.
func ExplainPrompt(registryCode, userQuestion string) string {
	return fmt.Sprintf(`You are an expert in Danish Statistics (DST).
Registry: "%s"
User Question: "%s"

Provide a concise, expert answer. Use Google Search to ensure information about variable coverage is current.`,
		registryCode, userQuestion)
}

// PaperSearchPrompt builds the prompt for finding economics papers that
// use the named registry. registryName must already be non-empty (see
// GenericRegistryLabel); topic is optional and appended verbatim when
// present.
func PaperSearchPrompt(registryName, topic string) string {
	contextQuery := fmt.Sprintf(`"Danish %s" OR "Denmark %s"`, registryName, registryName)
	if topic != "" {
		contextQuery += " " + topic
	}

	return fmt.Sprintf(`Find 4-5 distinct, high-quality economics research papers.

SEARCH CONTEXT:
The user wants papers that use Danish Administrative Data (specifically "%s").
Focus ONLY on:
1. American Economic Association (AEA) journals (AER, AEJ: Applied, etc.)
2. NBER Working Papers
3. CEPR Discussion Papers
4. Quarterly Journal of Economics (QJE)

QUERY TO USE: %s %s

OUTPUT FORMAT (Markdown):
Return a clean list. For each paper:

### [Title of the Paper]
*   **Authors**: [Author Names]
*   **Source**: [Journal Name/Working Paper Series] ([Year])
*   **Data Usage**: [Specific mention of how they used %s or Danish data]
*   [Link to abstract/PDF]([URL])

If you cannot find papers for this specific registry in these top journals, broaden the search to "Danish administrative data" generally but keep the high-quality journal constraint.`,
		registryName, paperSearchDomains, contextQuery, registryName)
}

// VariableSearchPrompt builds the prompt for a deep search of DST
// variable documentation. query must be non-empty and is embedded
// verbatim.
func VariableSearchPrompt(q string) string {
	return fmt.Sprintf(`Act as a Danish Statistics (DST) expert. The user is looking for variable documentation.

User Query: "%s"

SEARCH STRATEGY:
1. Use Google Search to find the variable code in the DST "Times" documentation or "Forskningvariabellister".
2. Search Query to execute: `+"`%s \"%s\"`"+`
3. Look for pages that contain the variable code (e.g. AEL_KOMKOD, SOC_STATUS) in the URL or title.

OUTPUT REQUIREMENTS:
If you find a match, extract:
- **Variable Code** (e.g. AEL_KOMKOD)
- **Definition** (What does it measure?)
- **Values/Categories** (e.g., 1=Married, 2=Unmarried)
- **Period** (Years available)

Format the output as a Markdown Table if multiple variables are found, or a detailed definition block if one specific variable is found.

Example Table Format:
| Code | Description | Dataset/Module | Years |
| :--- | :--- | :--- | :--- |
| ... | ... | ... | ... |

Always provide the specific URL to the documentation page found.`,
		q, variableSearchDomains, q)
}
