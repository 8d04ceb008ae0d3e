package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a dictionary from a tab-separated stream.
// Format: headword<TAB>gloss[, gloss...]
// Blank lines and lines starting with # are skipped.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "\t", 2)
		if len(parts) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 tab-separated fields, got %d", lineNum, len(parts))
		}

		word := parts[0]
		glosses := strings.Split(parts[1], ",")
		d.Add(word, glosses...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Write emits the dictionary as tab-separated lines, sorted by headword.
func (d *Dictionary) Write(w io.Writer) error {
	for _, e := range d.Entries() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Hmong, strings.Join(e.English, ", ")); err != nil {
			return err
		}
	}
	return nil
}
