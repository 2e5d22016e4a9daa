package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// readLines returns the lines of every named file, or of stdin when no file
// is given. "-" also means stdin.
func readLines(stdin io.Reader, files []string) ([]string, error) {
	if len(files) == 0 {
		return scanLines(stdin)
	}

	var lines []string
	for _, name := range files {
		if name == "-" {
			more, err := scanLines(stdin)
			if err != nil {
				return nil, err
			}
			lines = append(lines, more...)
			continue
		}

		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		more, err := scanLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		lines = append(lines, more...)
	}
	return lines, nil
}

func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
