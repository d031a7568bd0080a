// Package docs serves treegen's embedded help topics, rendered as rich
// terminal output when possible.
package docs

import (
	"embed"
	"sort"
	"strings"

	"github.com/arthur-debert/treegen/pkg/errors"
)

//go:embed topics/*.md
var topicsFS embed.FS

// Topics returns the available topic names in sorted order.
func Topics() []string {
	entries, err := topicsFS.ReadDir("topics")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Render returns the topic's content rendered for the terminal.
func Render(topic string) (string, error) {
	content, err := topicsFS.ReadFile("topics/" + topic + ".md")
	if err != nil {
		return "", errors.Newf(errors.ErrInvalidInput,
			"unknown topic %q, available: %s", topic, strings.Join(Topics(), ", "))
	}
	return NewGlamourRenderer().Render(string(content)), nil
}
