package faq

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_QuestionsDocument(t *testing.T) {
	doc := `
questions:
  - question: How do I reset my password?
    answer: Use the <a href="/reset">reset page</a>.
  - id: billing
    question: Where are invoices?
    answer: Under Billing.
`
	entries, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []Entry{
		{Question: "How do I reset my password?", Answer: `Use the <a href="/reset">reset page</a>.`},
		{ID: "billing", Question: "Where are invoices?", Answer: "Under Billing."},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ListAndJSON(t *testing.T) {
	list, err := Load(strings.NewReader("- question: One?\n  answer: Yes\n"))
	if err != nil {
		t.Fatalf("load list: %v", err)
	}
	if len(list) != 1 || list[0].Question != "One?" {
		t.Fatalf("unexpected list entries: %#v", list)
	}

	fromJSON, err := Load(strings.NewReader(`{"questions":[{"question":"Two?","answer":"No"}]}`))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if len(fromJSON) != 1 || fromJSON[0].Answer != "No" {
		t.Fatalf("unexpected json entries: %#v", fromJSON)
	}

	empty, err := Load(strings.NewReader("  \n"))
	if err != nil || empty != nil {
		t.Fatalf("expected no entries for blank input, got %#v, %v", empty, err)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if _, err := Load(strings.NewReader("questions:\n  - answer: orphan\n")); err == nil || !strings.Contains(err.Error(), "entry 0 has no question") {
		t.Fatalf("expected missing question error, got %v", err)
	}
	if _, err := Load(strings.NewReader("just a string")); err == nil {
		t.Fatalf("expected parse error for scalar document")
	}
	if _, err := Load(strings.NewReader("question:\n  - question: Typo?\n    answer: Key\n")); err == nil || !strings.Contains(err.Error(), `no "questions" list`) {
		t.Fatalf("expected missing questions key error, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	files := fstest.MapFS{
		"content/faq.yaml": {Data: []byte("questions:\n  - question: Hi?\n    answer: Hello\n")},
	}
	entries, err := LoadFS(files, "content/faq.yaml")
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if len(entries) != 1 || entries[0].Answer != "Hello" {
		t.Fatalf("unexpected entries: %#v", entries)
	}

	if _, err := LoadFS(files, "missing.yaml"); err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected missing file error, got %v", err)
	}
}
