package gateway

import "strings"

// Request/response structs for the Gemini generateContent REST API.
// Only the fields dandata reads are mapped; everything optional on the
// wire stays optional here so the normalizer can handle every
// present/absent combination explicitly.

type generateRequest struct {
	Contents []content `json:"contents"`
	Tools    []tool    `json:"tools,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text,omitempty"`
}

type tool struct {
	GoogleSearch *googleSearch `json:"googleSearch,omitempty"`
}

// googleSearch requests web-search grounding; it carries no options.
type googleSearch struct{}

// Response is the provider reply to one generateContent call. The
// provider only partially guarantees population: candidates may be
// empty, content absent, grounding metadata missing at any level.
type Response struct {
	Candidates []Candidate `json:"candidates"`
	Error      *APIError   `json:"error,omitempty"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content           *Content           `json:"content,omitempty"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

// Content holds the answer parts.
type Content struct {
	Parts []Part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

// Part is one fragment of answer text.
type Part struct {
	Text string `json:"text,omitempty"`
}

// GroundingMetadata carries the web-search citations attached to a
// candidate.
type GroundingMetadata struct {
	GroundingChunks  []GroundingChunk `json:"groundingChunks"`
	WebSearchQueries []string         `json:"webSearchQueries,omitempty"`
}

// GroundingChunk optionally references one web source.
type GroundingChunk struct {
	Web *WebSource `json:"web,omitempty"`
}

// WebSource is a cited page. Title and URI may each be empty.
type WebSource struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// APIError is an in-band provider error.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Text concatenates the answer parts of the first candidate, trimmed.
// It returns "" when any level of the path is absent.
func (r *Response) Text() string {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, p := range r.Candidates[0].Content.Parts {
		out += p.Text
	}
	return strings.TrimSpace(out)
}

// Chunks returns the grounding chunks of the first candidate, or nil
// when the metadata path is missing at any level.
func (r *Response) Chunks() []GroundingChunk {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata.GroundingChunks
}
