package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// readNamesFile loads newline-delimited names, skipping blank lines. "-"
// reads from stdin.
func readNamesFile(path string) ([]string, error) {
	return readLines(path, false)
}

// readFormatsFile loads newline-delimited format patterns. Blank lines and
// lines starting with # are skipped.
func readFormatsFile(path string) ([]string, error) {
	lines, err := readLines(path, true)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no format patterns found in %s", path)
	}
	return lines, nil
}

func readLines(path string, skipComments bool) ([]string, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close() // nolint:errcheck
		reader = file
	}

	lines := make([]string, 0)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if skipComments && strings.HasPrefix(raw, "#") {
			continue
		}
		lines = append(lines, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
