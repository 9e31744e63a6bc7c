// Package stats derives word and character counts from document text.
package stats

import (
	"strings"
	"unicode/utf8"

	"github.com/docylit/docylit/pkg/domain"
)

// Compute returns the stats for the given plain text. Characters counts every
// character including whitespace (one per rune, so multi-byte characters are
// not overcounted). Words counts maximal whitespace-delimited runs; a string
// that trims to empty has zero words.
func Compute(text string) domain.TextStats {
	return domain.TextStats{
		Words:      len(strings.Fields(text)),
		Characters: utf8.RuneCountInString(text),
	}
}
