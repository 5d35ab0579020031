package viewkit

import (
	"io/fs"
	"strings"
	"testing"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), StylesheetName)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	for _, selector := range []string{".checkbox-list", ".faq-answer"} {
		if !strings.Contains(string(data), selector) {
			t.Fatalf("expected stylesheet to style %s", selector)
		}
	}
}
