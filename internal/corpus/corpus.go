// Package corpus loads pre-tokenized word corpora from disk.
//
// A corpus file holds whitespace-separated words; splitting on whitespace is
// the only processing applied. Any further pre-tokenization policy belongs to
// whatever produced the file.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read collects the whitespace-separated words from r.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return words, nil
}

// Load reads the whitespace-separated words of the corpus file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file %s: %w", path, err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("corpus file %s: %w", path, err)
	}
	return words, nil
}
