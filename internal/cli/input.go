package cli

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// readParagraphs splits r into paragraphs separated by blank lines and each
// paragraph into whitespace-free words. Leading, trailing and repeated blank
// lines produce no empty paragraphs.
func readParagraphs(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		paragraphs [][]string
		current    []string
	)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			if len(current) > 0 {
				paragraphs = append(paragraphs, current)
				current = nil
			}
			continue
		}
		current = append(current, fields...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, current)
	}

	return paragraphs, nil
}

// wordsFromArgs tokenizes command-line arguments into one paragraph.
func wordsFromArgs(args []string) []string {
	var words []string
	for _, a := range args {
		words = append(words, strings.Fields(a)...)
	}
	return words
}
