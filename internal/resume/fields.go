package resume

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ws tolerates spaces and a single line wrap inside an address.
const ws = `[ \t]*\n?[ \t]*`

var (
	strictEmailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}\b`)

	// emailPattern is only tried when no address is written in one piece.
	emailPattern = regexp.MustCompile(
		`[A-Za-z0-9._%+-]+` + ws + `@` + ws +
			`[A-Za-z0-9-]+(?:` + ws + `\.` + ws + `[A-Za-z0-9-]+)*` +
			ws + `\.` + ws + `[A-Za-z]{2,}\b`,
	)
)

var (
	nameLabelPattern  = regexp.MustCompile(`(?im)^[ \t]*(?:full[ \t]+)?name[ \t]*[:\-][ \t]*([A-Za-z][A-Za-z.' \-]*)$`)
	yearPattern       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	yearRangePattern  = regexp.MustCompile(`(?i)\b\d{4}\s*-\s*(?:\d{4}|present|current)\b`)
	alphaWordPattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z.'-]*$`)
	pureAlphaPattern  = regexp.MustCompile(`^[A-Za-z]+$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	bulletPrefix      = regexp.MustCompile(`^[*\-+>o]\s+|^[*\-+>]`)
	neverMatch        = regexp.MustCompile(`[^\s\S]`)
)

const (
	maxNameWords        = 4
	minNameWords        = 2
	maxNameDigitDensity = 0.30
)

// ExtractName looks for the candidate's name among the first lines of the
// document, falling back to an explicit "Name:" label anywhere in the text.
func (p *Parser) ExtractName(rt RawText) string {
	return firstOf(
		func() (string, bool) { return p.scanName(rt.rawLines()) },
		func() (string, bool) {
			m := p.nameLabel.FindStringSubmatch(rt.Text)
			if m == nil {
				return "", false
			}
			name := strings.Join(strings.Fields(m[1]), " ")
			n := len(strings.Fields(name))
			return name, n >= 1 && n <= maxNameWords
		},
		func() (string, bool) { return NameNotFound, true },
	)
}

func (p *Parser) scanName(lines []string) (string, bool) {
	limit := min(p.nameScanLines, len(lines))
	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || p.rejectNameLine(line) {
			continue
		}
		words := strings.Fields(line)
		if !allMatch(words, alphaWordPattern) {
			continue
		}
		if len(words) >= minNameWords && len(words) <= maxNameWords {
			return strings.Join(words, " "), true
		}
		// A lone first name: try to complete it with the following line.
		if len(words) == 1 && len(line) > 2 && pureAlphaPattern.MatchString(line) {
			next := nextNonBlank(lines, i+1)
			if next == "" || p.rejectNameLine(next) {
				continue
			}
			nextWords := strings.Fields(next)
			if allMatch(nextWords, pureAlphaPattern) && 1+len(nextWords) <= maxNameWords {
				return line + " " + strings.Join(nextWords, " "), true
			}
		}
	}
	return "", false
}

func (p *Parser) rejectNameLine(line string) bool {
	if strings.Contains(line, "@") {
		return true
	}
	if len(strings.Fields(line)) > maxNameWords {
		return true
	}
	if digitDensity(line) > maxNameDigitDensity {
		return true
	}
	return p.skipMarker.MatchString(line)
}

// ExtractEmail returns the first email-shaped token. Addresses broken up by
// spaces or a line wrap are only considered when none is written in one piece,
// and come back with the whitespace removed.
func (p *Parser) ExtractEmail(rt RawText) string {
	for _, re := range p.emails {
		if m := re.FindString(rt.Text); m != "" {
			return whitespacePattern.ReplaceAllString(m, "")
		}
	}
	return EmailNotFound
}

// ExtractPhone tries each phone pattern in priority order and returns the
// first match of the first pattern that matches anywhere.
func (p *Parser) ExtractPhone(rt RawText) string {
	for _, re := range p.phones {
		if m := re.FindString(rt.Text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return PhoneNotFound
}

// ExtractSkills returns every dictionary keyword found as a whole word,
// title-cased and deduplicated case-insensitively in dictionary order.
func (p *Parser) ExtractSkills(rt RawText) []string {
	found := make([]string, 0)
	seen := make(map[string]struct{})
	for _, s := range p.skills {
		if !s.re.MatchString(rt.Text) {
			continue
		}
		display := titleCase(s.keyword)
		key := strings.ToLower(display)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, display)
	}
	return found
}

// ExtractEducation emits one entry per line that matches any education pattern.
// Duplicate mentions produce duplicate entries.
func (p *Parser) ExtractEducation(rt RawText) []EducationEntry {
	entries := make([]EducationEntry, 0)
	for _, line := range rt.Lines {
		if !anyMatch(p.education, line) {
			continue
		}
		entries = append(entries, EducationEntry{
			Degree:      line,
			Year:        p.findYear(line),
			Institution: UnknownInstitution,
		})
	}
	return entries
}

// ExtractExperience emits one entry per line containing a job title keyword.
func (p *Parser) ExtractExperience(rt RawText) []ExperienceEntry {
	entries := make([]ExperienceEntry, 0)
	for _, line := range rt.Lines {
		if !p.jobTitle.MatchString(line) {
			continue
		}
		entries = append(entries, ExperienceEntry{
			Title:   line,
			Year:    p.findYear(line),
			Company: UnknownCompany,
		})
	}
	return entries
}

// SummarizeExperience counts year ranges such as "2018 - 2021" or "2020 - present".
func (p *Parser) SummarizeExperience(rt RawText) string {
	n := len(p.yearRange.FindAllString(rt.Text, -1))
	if n == 0 {
		return NoWorkExperience
	}
	return fmt.Sprintf("Found %d work experience entries", n)
}

// ExtractCertifications returns every line mentioning a certification keyword.
func (p *Parser) ExtractCertifications(rt RawText) []string {
	certs := make([]string, 0)
	for _, line := range rt.Lines {
		lower := strings.ToLower(line)
		for _, kw := range p.certs {
			if strings.Contains(lower, kw) {
				certs = append(certs, line)
				break
			}
		}
	}
	return certs
}

func (p *Parser) findYear(line string) *string {
	y := p.year.FindString(line)
	if y == "" {
		return nil
	}
	return &y
}

// projectLines splits a projects section body into its non-empty lines,
// without list bullets.
func projectLines(body string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// keywordPattern matches kw case-insensitively when it is not embedded in a
// longer alphanumeric run, so "react" never matches inside "reactor" while
// "c++" and "node.js" still match.
func keywordPattern(kw string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9])` + regexp.QuoteMeta(kw) + `(?:[^A-Za-z0-9]|$)`)
}

// wordAlternation builds a case-insensitive whole-word alternation of words.
func wordAlternation(words []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(words))
	for _, w := range lowerAll(words) {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	if len(quoted) == 0 {
		return neverMatch, nil
	}
	return regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// titleCase upper-cases the first letter of every run of letters and lower-cases
// the rest: "node.js" becomes "Node.Js", "problem-solving" becomes "Problem-Solving".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

func digitDensity(line string) float64 {
	var digits, total int
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digits) / float64(total)
}

func nextNonBlank(lines []string, from int) string {
	for i := from; i < len(lines); i++ {
		if s := strings.TrimSpace(lines[i]); s != "" {
			return s
		}
	}
	return ""
}

func allMatch(words []string, re *regexp.Regexp) bool {
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !re.MatchString(w) {
			return false
		}
	}
	return true
}

func anyMatch(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
