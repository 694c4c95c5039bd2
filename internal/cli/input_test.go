package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want [][]string
	}{
		{"empty", "", nil},
		{"only blanks", "\n  \n\t\n", nil},
		{"one line", "a b  c", [][]string{{"a", "b", "c"}}},
		{"wrapped lines join", "a b\nc\n", [][]string{{"a", "b", "c"}}},
		{"blank separates", "a\n\nb\n", [][]string{{"a"}, {"b"}}},
		{"repeated blanks", "\n\na\n \n\n\tb c\n\n", [][]string{{"a"}, {"b", "c"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readParagraphs(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadParagraphs_LineTooLong(t *testing.T) {
	_, err := readParagraphs(strings.NewReader(strings.Repeat("x", maxLineBytes+1)))
	assert.Error(t, err)
}

func TestWordsFromArgs(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, wordsFromArgs([]string{" a  b", "c "}))
	assert.Nil(t, wordsFromArgs([]string{"  "}))
}
