package consolidate

import (
	"fmt"
	"regexp"
	"strings"
)

// generalSection holds the content that appears before any named header.
// It is rendered in place without a synthetic header of its own.
const generalSection = "general"

var (
	// numberedHeader matches section headers like "2. **Redirects**:".
	numberedHeader = regexp.MustCompile(`^\s*\d+\.\s*\*\*(.+?)\*\*:?\s*$`)

	// boldHeader matches standalone bold lines like "**Redirects**:".
	boldHeader = regexp.MustCompile(`^\s*\*\*(.+?)\*\*:?\s*$`)

	// codeFence matches fenced code block markers.
	codeFence = regexp.MustCompile("^\\s*```")

	// listMarker matches leftover numbered-list markers with no content.
	listMarker = regexp.MustCompile(`^\s*\d+\.\s*$`)
)

// outlineSection is one named section of an informal description outline.
type outlineSection struct {
	name  string
	lines []string
}

// parseOutline splits a description into ordered (section, content) pairs.
// A numbered bold header or a standalone bold line starts a new section;
// everything before the first header belongs to the implicit general
// section.
func parseOutline(text string) []outlineSection {
	sections := []outlineSection{{name: generalSection}}
	current := 0
	for _, line := range strings.Split(text, "\n") {
		if m := numberedHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, outlineSection{name: m[1]})
			current = len(sections) - 1
			continue
		}
		if m := boldHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, outlineSection{name: m[1]})
			current = len(sections) - 1
			continue
		}
		sections[current].lines = append(sections[current].lines, line)
	}
	return sections
}

// mergeOutlines unions the description outlines of a file group. The same
// section name from different members merges into one section, duplicate
// content lines collapse, and section order follows first-seen order across
// members in member order. Non-general sections are renumbered 1-based in
// the rebuilt text; code-fence markers and leftover list markers are
// dropped.
func mergeOutlines(descriptions []string) string {
	order := make([]string, 0, len(descriptions))
	content := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, description := range descriptions {
		for _, section := range parseOutline(description) {
			if seen[section.name] == nil {
				order = append(order, section.name)
				seen[section.name] = make(map[string]bool)
			}
			for _, line := range section.lines {
				trimmed := strings.TrimSpace(line)
				if trimmed == "" || seen[section.name][trimmed] {
					continue
				}
				seen[section.name][trimmed] = true
				content[section.name] = append(content[section.name], line)
			}
		}
	}

	var b strings.Builder
	index := 0
	for _, name := range order {
		lines := renderableLines(content[name])
		if len(lines) == 0 {
			continue
		}
		if name != generalSection {
			index++
			fmt.Fprintf(&b, "%d. **%s**:\n", index, name)
		}
		for _, line := range lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), " \t\n")
}

// renderableLines drops lines that are code-fence markers or leftover
// numbered-list markers.
func renderableLines(lines []string) []string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if codeFence.MatchString(line) || listMarker.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
