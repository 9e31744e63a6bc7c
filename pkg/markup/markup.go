// Package markup normalizes model output into markup fragments the editing
// surface can hold. The document invariant is that content is always a
// well-formed fragment, so everything inserted passes through here.
package markup

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var policy = bluemonday.UGCPolicy()

// Markdown block constructs at the start of a line: headings, fences, block
// quotes, list markers, emphasis markers anywhere.
var markdownRE = regexp.MustCompile("(?m)^(#{1,6} |> |[-*+] |\\d+\\. |```)|\\*\\*|__")

var htmlTagRE = regexp.MustCompile(`<[a-zA-Z/][^>]*>`)

// Render converts markdown to an HTML fragment.
func Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Sanitize strips anything outside the allowed user-generated-content tag
// set, keeping the fragment well-formed.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}

// NormalizeModelOutput prepares generated text for insertion into the
// editing surface. HTML fragments are sanitized, markdown is rendered then
// sanitized, and plain text passes through untouched.
func NormalizeModelOutput(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	if htmlTagRE.MatchString(trimmed) {
		return strings.TrimSpace(Sanitize(trimmed))
	}

	if markdownRE.MatchString(trimmed) || strings.Contains(trimmed, "\n\n") {
		html, err := Render(trimmed)
		if err != nil {
			// Unrenderable output is inserted as-is; the sanitizer still
			// guarantees a well-formed fragment.
			return strings.TrimSpace(Sanitize(trimmed))
		}
		return strings.TrimSpace(Sanitize(html))
	}

	return trimmed
}
