// Package htmlsanitize cleans HTML fragments received from the recipe catalog.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy is safe for concurrent use once built.
var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize strips scripts, event handlers and unsafe URLs, keeping basic formatting and links.
func Sanitize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return policy.Sanitize(s)
}
