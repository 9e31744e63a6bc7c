package stats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantWords int
		wantChars int
	}{
		{"empty", "", 0, 0},
		{"whitespace only", "   \t\n  ", 0, 7},
		{"single word", "hello", 1, 5},
		{"two words", "Hello world", 2, 11},
		{"internal runs of spaces", "a   b\t\tc", 3, 8},
		{"leading and trailing space", "  padded  ", 1, 10},
		{"newline separated", "one\ntwo\nthree", 3, 13},
		{"multibyte runes count once", "héllo wörld", 2, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.text)
			assert.Equal(t, tt.wantWords, got.Words, "words")
			assert.Equal(t, tt.wantChars, got.Characters, "characters")
		})
	}
}

func TestComputeZeroWordsIffBlank(t *testing.T) {
	samples := []string{"", " ", "\n\t", "x", " x ", "a b", "   a"}
	for _, s := range samples {
		got := Compute(s)
		blank := strings.TrimSpace(s) == ""
		if blank && got.Words != 0 {
			t.Errorf("Compute(%q).Words = %d, want 0 for blank input", s, got.Words)
		}
		if !blank && got.Words == 0 {
			t.Errorf("Compute(%q).Words = 0, want > 0 for non-blank input", s)
		}
	}
}
