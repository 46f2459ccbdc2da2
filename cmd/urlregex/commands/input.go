package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// readURLs reads one URL per line. Blank lines and lines starting with '#'
// are skipped.
func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read urls: %w", err)
	}
	return urls, nil
}

// readURLFile reads URLs from path, or from stdin when path is "-".
func readURLFile(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return readURLs(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open url file: %w", err)
	}
	defer f.Close()
	return readURLs(f)
}

// collectURLs prefers command arguments, then the input file, then stdin.
func collectURLs(args []string, input string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if input != "" {
		return readURLFile(input, stdin)
	}
	return readURLs(stdin)
}
