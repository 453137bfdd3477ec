package configs

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadURLRules reads a URL classification rule file: one regex source per
// line, matched in file order. Blank lines and lines starting with '#' are
// skipped. The sources are returned verbatim; compilation (and therefore
// pattern errors) happens when the classifier is constructed.
func LoadURLRules(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open url rule file %q: %w", path, err)
	}
	defer f.Close()

	var sources []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read url rule file %q: %w", path, err)
	}

	return sources, nil
}
