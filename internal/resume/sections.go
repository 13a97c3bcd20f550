package resume

import (
	"strings"
)

// Segment locates each configured section and returns its raw body keyed by
// section name. Sections whose header is missing, or whose body is shorter than
// the configured minimum, are absent from the map.
//
// A body starts after the header keyword on the header line and ends before the
// first later line that is short, mentions a boundary keyword and is not a
// repeat of this section's own header; otherwise it runs to the end of the text.
// Bodies of different sections may overlap when headers are nested or ambiguous.
func (p *Parser) Segment(rt RawText) map[string]string {
	sections := make(map[string]string)
	lines := rt.textLines()

	for _, s := range p.sections {
		start := -1
		for i, line := range lines {
			if s.header.MatchString(line) {
				start = i
				break
			}
		}
		if start < 0 {
			continue
		}

		body := make([]string, 0, 8)
		if rest := p.afterHeader(s, lines[start]); rest != "" {
			body = append(body, rest)
		}
		for _, line := range lines[start+1:] {
			if p.isBoundary(s, line) {
				break
			}
			body = append(body, line)
		}

		text := strings.TrimSpace(strings.Join(body, "\n"))
		if len(text) < p.minSectionLength {
			// header matched inside running text; not a real section
			continue
		}
		sections[s.name] = text
	}
	return sections
}

// afterHeader returns the text following the header keyword on its line,
// without the usual ":" or "-" separator.
func (p *Parser) afterHeader(s sectionMatcher, line string) string {
	loc := s.header.FindStringIndex(line)
	rest := line[loc[1]:]
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(rest), ":-|"))
}

func (p *Parser) isBoundary(s sectionMatcher, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || len(line) >= sectionBoundaryMaxLen {
		return false
	}
	return p.boundary.MatchString(line) && !s.header.MatchString(line)
}
