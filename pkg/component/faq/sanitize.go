package faq

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	answerPolicyOnce sync.Once
	answerPolicy     *bluemonday.Policy
)

// sanitizeAnswer strips scripts, event handlers and unsafe URLs from answer
// markup while keeping ordinary formatting.
func sanitizeAnswer(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(answerSanitizer().Sanitize(trimmed))
}

func answerSanitizer() *bluemonday.Policy {
	answerPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("class").OnElements("p", "span", "div", "code", "pre")
		answerPolicy = policy
	})
	return answerPolicy
}
