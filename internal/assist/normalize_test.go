package assist

import (
	"errors"
	"testing"

	"dandata/internal/gateway"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func respWithText(text string) *gateway.Response {
	return &gateway.Response{
		Candidates: []gateway.Candidate{
			{Content: &gateway.Content{Parts: []gateway.Part{{Text: text}}}},
		},
	}
}

func TestNormalizeGatewayErrorBecomesApology(t *testing.T) {
	cases := []struct {
		intent Intent
		want   string
	}{
		{IntentPapers, "Unable to fetch papers. Please check your API key."},
		{IntentExplain, "Error processing request."},
		{IntentVariables, "Unable to search variables right now."},
	}
	for _, tc := range cases {
		t.Run(tc.intent.String(), func(t *testing.T) {
			for _, err := range []error{
				gateway.ErrMissingCredential,
				&gateway.RequestError{Cause: errors.New("connection refused")},
			} {
				got := Normalize(tc.intent, nil, err)
				assert.Equal(t, tc.want, got.Text)
				assert.NotNil(t, got.Sources)
				assert.Empty(t, got.Sources)
			}
		})
	}
}

func TestNormalizeEmptyTextFallsBack(t *testing.T) {
	cases := []struct {
		intent Intent
		want   string
	}{
		{IntentPapers, "No specific high-quality papers found matching these criteria."},
		{IntentExplain, "No info available."},
		{IntentVariables, "No variables found."},
	}
	for _, tc := range cases {
		t.Run(tc.intent.String(), func(t *testing.T) {
			for _, resp := range []*gateway.Response{
				{},
				respWithText(""),
				respWithText("   \n"),
			} {
				got := Normalize(tc.intent, resp, nil)
				assert.Equal(t, tc.want, got.Text)
				assert.NotEmpty(t, got.Text, "Result.Text must never be empty")
			}
		})
	}
}

func TestNormalizeAbsentGroundingIsEmptySlice(t *testing.T) {
	got := Normalize(IntentExplain, respWithText("answer"), nil)
	if got.Sources == nil {
		t.Fatal("Sources must not be nil")
	}
	if len(got.Sources) != 0 {
		t.Errorf("Sources = %v, want empty", got.Sources)
	}
}

func TestNormalizeChunkHandling(t *testing.T) {
	resp := respWithText("answer")
	resp.Candidates[0].GroundingMetadata = &gateway.GroundingMetadata{
		GroundingChunks: []gateway.GroundingChunk{
			{Web: &gateway.WebSource{Title: "DST Times", URI: "https://dst.dk/doc"}},
			{}, // no web reference: dropped
			{Web: &gateway.WebSource{URI: "https://dst.dk/other"}},   // missing title
			{Web: &gateway.WebSource{Title: "Untitled link"}},        // missing uri
			{Web: &gateway.WebSource{Title: "Dup", URI: "https://dst.dk/doc"}}, // duplicate passes through
		},
	}

	got := Normalize(IntentVariables, resp, nil)
	want := []Source{
		{Title: "DST Times", URI: "https://dst.dk/doc"},
		{Title: "DST Documentation", URI: "https://dst.dk/other"},
		{Title: "Untitled link", URI: "#"},
		{Title: "Dup", URI: "https://dst.dk/doc"},
	}
	if diff := cmp.Diff(want, got.Sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizePlaceholderTitlesPerIntent(t *testing.T) {
	mk := func() *gateway.Response {
		r := respWithText("text")
		r.Candidates[0].GroundingMetadata = &gateway.GroundingMetadata{
			GroundingChunks: []gateway.GroundingChunk{{Web: &gateway.WebSource{URI: "u"}}},
		}
		return r
	}

	assert.Equal(t, "Web Source", Normalize(IntentExplain, mk(), nil).Sources[0].Title)
	assert.Equal(t, "Source", Normalize(IntentPapers, mk(), nil).Sources[0].Title)
	assert.Equal(t, "DST Documentation", Normalize(IntentVariables, mk(), nil).Sources[0].Title)
}
