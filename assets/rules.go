package assets

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed rules.txt
var defaultRules string

// Rules is the ordered, opaque text shown on the Rules screen.
type Rules struct {
	lines []string
}

// DefaultRules returns the built-in rules text.
func DefaultRules() *Rules {
	return parseRules(defaultRules)
}

// LoadRules reads rules from a text file, one line per rendered line.
// An empty path yields the built-in text.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return parseRules(string(data)), nil
}

func parseRules(text string) *Rules {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return &Rules{lines: lines}
}

// Lines returns the rules in display order.
func (r *Rules) Lines() []string {
	return r.lines
}
