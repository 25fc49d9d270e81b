package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadList reads one word per line from r. Blank lines and lines starting
// with '#' are skipped. Words are returned as written; run them through
// NormalizeAll before generating.
func ReadList(r io.Reader) ([]string, error) {
	var list []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	return list, nil
}

// ReadFile reads a word list from path (see ReadList).
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided word list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return ReadList(f)
}
