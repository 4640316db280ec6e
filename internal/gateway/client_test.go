package gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(ts *httptest.Server, apiKey string) *Client {
	return New(Config{
		APIKey:  apiKey,
		BaseURL: ts.URL + "/v1beta",
		Model:   "gemini-2.5-flash",
		Timeout: 5 * time.Second,
	}, nil)
}

func TestGenerateSuccessWithGrounding(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("API key not passed")
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [{
				"content": {"parts": [{"text": "IDAN covers "}, {"text": "employment spells."}], "role": "model"},
				"groundingMetadata": {
					"groundingChunks": [
						{"web": {"title": "DST Times", "uri": "https://dst.dk/times"}},
						{}
					],
					"webSearchQueries": ["IDAN documentation"]
				}
			}]
		}`))
	}))
	defer ts.Close()

	resp, err := newTestClient(ts, "test-key").Generate(context.Background(), "tell me about IDAN")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got := resp.Text(); got != "IDAN covers employment spells." {
		t.Errorf("Text() = %q", got)
	}
	chunks := resp.Chunks()
	if len(chunks) != 2 {
		t.Fatalf("expected 2 grounding chunks, got %d", len(chunks))
	}
	if chunks[0].Web == nil || chunks[0].Web.URI != "https://dst.dk/times" {
		t.Errorf("first chunk web = %+v", chunks[0].Web)
	}
	if chunks[1].Web != nil {
		t.Error("second chunk should have no web reference")
	}
}

func TestGenerateRequestsGoogleSearchTool(t *testing.T) {
	var gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer ts.Close()

	if _, err := newTestClient(ts, "k").Generate(context.Background(), "hi"); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(gotBody, `"googleSearch"`) {
		t.Errorf("request body missing googleSearch tool: %s", gotBody)
	}
	if !strings.Contains(gotBody, `"hi"`) {
		t.Errorf("request body missing prompt: %s", gotBody)
	}
}

func TestGenerateMissingCredentialSkipsNetwork(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "").Generate(context.Background(), "anything")
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("err = %v, want ErrMissingCredential", err)
	}
	if calls != 0 {
		t.Errorf("network was hit %d times despite missing credential", calls)
	}
}

func TestGenerateNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "k").Generate(context.Background(), "x")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if !strings.Contains(reqErr.Error(), "429") {
		t.Errorf("cause should carry the status: %v", reqErr)
	}
}

func TestGenerateMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "k").Generate(context.Background(), "x")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
}

func TestGenerateInBandAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": {"code": 400, "message": "invalid argument", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts, "k").Generate(context.Background(), "x")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
	if !strings.Contains(err.Error(), "invalid argument") {
		t.Errorf("error should carry the provider message: %v", err)
	}
}

func TestGenerateNetworkFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // connection refused from here on

	_, err := newTestClient(ts, "k").Generate(context.Background(), "x")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("err = %v, want *RequestError", err)
	}
}

func TestResponseTextAbsencePaths(t *testing.T) {
	cases := []struct {
		name string
		resp *Response
	}{
		{"nil response", nil},
		{"no candidates", &Response{}},
		{"no content", &Response{Candidates: []Candidate{{}}}},
		{"no parts", &Response{Candidates: []Candidate{{Content: &Content{}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.resp.Text(); got != "" {
				t.Errorf("Text() = %q, want empty", got)
			}
			if got := tc.resp.Chunks(); len(got) != 0 {
				t.Errorf("Chunks() = %v, want none", got)
			}
		})
	}
}
