package main

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/dodgebc/goban/weiqi"
)

// script is a parsed move script
type script struct {
	name  string
	size  int
	moves []weiqi.Move
}

// parseScript reads a move script. Blank lines and lines starting with '#'
// are skipped, an optional "size N" line may precede the first move, and
// every other whitespace separated token is a move such as "Bcd" or "W".
func parseScript(name string, data []byte, defaultSize int) (script, error) {
	s := script{name: name, size: defaultSize}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if (len(line) == 0) || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "size" {
			if len(s.moves) > 0 {
				return script{}, fmt.Errorf("%s:%d: size after first move", name, lineNumber)
			}
			if len(fields) != 2 {
				return script{}, fmt.Errorf("%s:%d: expected \"size N\"", name, lineNumber)
			}
			size, err := strconv.Atoi(fields[1])
			if err != nil || size < 1 || size > weiqi.MaxSize {
				return script{}, fmt.Errorf("%s:%d: invalid size %q", name, lineNumber, fields[1])
			}
			s.size = size
			continue
		}
		for _, f := range fields {
			m, err := weiqi.NewMoveFromString(f)
			if err != nil {
				return script{}, fmt.Errorf("%s:%d: %w", name, lineNumber, err)
			}
			s.moves = append(s.moves, m)
		}
	}
	if err := scanner.Err(); err != nil {
		return script{}, fmt.Errorf("%s: %w", name, err)
	}
	return s, nil
}
