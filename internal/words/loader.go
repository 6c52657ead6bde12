package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"
)

// ErrEmptyList is returned when a word list holds no valid tokens.
var ErrEmptyList = errors.New("words: word list is empty")

// maxTokenSize bounds a single token; longer runs are a malformed file.
const maxTokenSize = 64 * 1024

// LoadFile reads a word list from path. See Load for the format.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("words: load %s: %w", path, err)
	}
	return list, nil
}

// Load reads whitespace-delimited tokens (space, tab, CR, LF) and returns
// the distinct ones in sorted order. Tokens that are not valid UTF-8 are
// dropped and scanning continues.
func Load(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	sc.Split(splitTokens)

	seen := make(map[string]struct{})
	for sc.Scan() {
		tok := sc.Bytes()
		if !utf8.Valid(tok) {
			continue
		}
		seen[string(tok)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: scan: %w", err)
	}
	if len(seen) == 0 {
		return nil, ErrEmptyList
	}

	list := make([]string, 0, len(seen))
	for w := range seen {
		list = append(list, w)
	}
	sort.Strings(list)
	return list, nil
}

func isDelim(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// splitTokens splits on ASCII whitespace bytes only, so invalid UTF-8
// inside a token never merges or splits it unexpectedly.
func splitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isDelim(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isDelim(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
