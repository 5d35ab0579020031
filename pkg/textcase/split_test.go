package textcase

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
)

func TestSplitPascalCase(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "single letter", input: "A", want: "A"},
		{name: "single lower", input: "a", want: "a"},
		{name: "two words", input: "InProcess", want: "In Process"},
		{name: "acronym in the middle", input: "HasABCDAcronym", want: "Has ABCD Acronym"},
		{name: "leading acronym", input: "HTMLParser", want: "HTML Parser"},
		{name: "trailing acronym splits last letter", input: "EndsWithAB", want: "Ends With A B"},
		{name: "pure acronym splits last letter", input: "AB", want: "A B"},
		{name: "long acronym", input: "ABCD", want: "ABC D"},
		{name: "camel case", input: "inProcess", want: "in Process"},
		{name: "trailing single capital", input: "PlanB", want: "Plan B"},
		{name: "digits pass through", input: "Version2Beta", want: "Version2 Beta"},
		{name: "digits before capital run", input: "Area51AB", want: "Area51A B"},
		{name: "existing spaces", input: "In Process", want: "In Process"},
		{name: "punctuation before capital", input: "Read-OnlyMode", want: "Read- Only Mode"},
		{name: "lower only", input: "lowercase", want: "lowercase"},
		{name: "unicode letters", input: "ÉtéÀParis", want: "Été À Paris"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SplitPascalCase(tc.input); got != tc.want {
				t.Fatalf("SplitPascalCase(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSplitPascalCaseOnlyInsertsSpaces(t *testing.T) {
	stripped := func(s string) string { return strings.ReplaceAll(s, " ", "") }
	property := func(input string) bool {
		return stripped(SplitPascalCase(input)) == stripped(input)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("split mutated characters: %v", err)
	}

	for _, input := range []string{"InProcess", "HasABCDAcronym", "AB", "x", "", "Ab\xffCd", "\xc3", "\xffAB", "Ok\xe2\x82"} {
		if got := stripped(SplitPascalCase(input)); got != input {
			t.Fatalf("stripping %q gave %q", input, got)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("HasABCDAcronym")
	want := []string{"Has", "ABCD", "Acronym"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
	if words := Words(""); len(words) != 0 {
		t.Fatalf("expected no words for empty input, got %#v", words)
	}
}

func TestSplitPascalCaseKeepsInvalidUTF8(t *testing.T) {
	got := SplitPascalCase("Ab\xffCd")
	if want := "Ab\xff Cd"; got != want {
		t.Fatalf("SplitPascalCase(%q) = %q, want %q", "Ab\xffCd", got, want)
	}
}
