// Package resume turns raw résumé text into a structured Record using
// rule-based heuristics only: normalization, independent field extractors,
// a line-oriented section segmenter and a record builder that ties them together.
package resume

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DefaultNameScanLines    = 5
	DefaultMinSectionLength = 10

	// sectionBoundaryMaxLen is the length under which a line containing a
	// boundary keyword is treated as the next section's header.
	sectionBoundaryMaxLen = 50
	// summaryFallbackMinLen is the length a line must exceed to stand in for a
	// missing summary section.
	summaryFallbackMinLen = 50
)

// Config controls a Parser. Zero values select the defaults.
type Config struct {
	// NameScanLines is how many leading lines are considered for the candidate name.
	NameScanLines int
	// MinSectionLength is the shortest trimmed body kept for a section.
	MinSectionLength int
	// Dictionary overrides keyword tables; nil or empty fields use DefaultDictionary.
	Dictionary *Dictionary
}

type skillMatcher struct {
	keyword string
	re      *regexp.Regexp
}

type sectionMatcher struct {
	name   string
	header *regexp.Regexp
}

// Parser holds the compiled dictionaries. It is immutable after New and safe
// for concurrent use by multiple goroutines.
type Parser struct {
	nameScanLines    int
	minSectionLength int

	emails      []*regexp.Regexp
	nameLabel   *regexp.Regexp
	year        *regexp.Regexp
	yearRange   *regexp.Regexp
	phones      []*regexp.Regexp
	skills      []skillMatcher
	education   []*regexp.Regexp
	jobTitle    *regexp.Regexp
	sections    []sectionMatcher
	boundary    *regexp.Regexp
	skipMarker  *regexp.Regexp
	certs       []string
}

// New compiles cfg into a Parser. It fails only when an overridden pattern
// does not compile.
func New(cfg Config) (*Parser, error) {
	dict := cfg.Dictionary.withDefaults()

	p := &Parser{
		nameScanLines:    cfg.NameScanLines,
		minSectionLength: cfg.MinSectionLength,
		emails:           []*regexp.Regexp{strictEmailPattern, emailPattern},
		nameLabel:        nameLabelPattern,
		year:             yearPattern,
		yearRange:        yearRangePattern,
		certs:            lowerAll(dict.CertificationKeywords),
	}
	if p.nameScanLines <= 0 {
		p.nameScanLines = DefaultNameScanLines
	}
	if p.minSectionLength <= 0 {
		p.minSectionLength = DefaultMinSectionLength
	}

	for _, pat := range dict.PhonePatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("compile phone pattern %q: %w", pat, err)
		}
		p.phones = append(p.phones, re)
	}

	for _, cat := range dict.SkillCategories {
		for _, kw := range cat.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			p.skills = append(p.skills, skillMatcher{keyword: kw, re: keywordPattern(kw)})
		}
	}

	for _, pat := range dict.EducationPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("compile education pattern %q: %w", pat, err)
		}
		p.education = append(p.education, re)
	}

	var err error
	if p.jobTitle, err = wordAlternation(dict.JobTitles); err != nil {
		return nil, fmt.Errorf("compile job titles: %w", err)
	}
	if p.boundary, err = wordAlternation(dict.BoundaryKeywords); err != nil {
		return nil, fmt.Errorf("compile boundary keywords: %w", err)
	}
	if p.skipMarker, err = wordAlternation(dict.NameSkipMarkers); err != nil {
		return nil, fmt.Errorf("compile name skip markers: %w", err)
	}

	for _, h := range dict.SectionHeaders {
		re, err := regexp.Compile(`(?i)\b(?:` + h.Pattern + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("compile section header %q: %w", h.Name, err)
		}
		p.sections = append(p.sections, sectionMatcher{name: h.Name, header: re})
	}

	return p, nil
}

// Parse runs the full pipeline over raw text and assembles a Record.
// method identifies the text extraction path and is copied onto the record.
//
// Field-level misses never fail the parse; only input that normalizes to
// nothing produces an error record.
func (p *Parser) Parse(raw, method string) *Record {
	rt := Normalize(raw)
	if rt.Empty() {
		return ErrorRecord(ErrEmptyInput.Error())
	}

	sections := p.Segment(rt)

	return &Record{
		Status:            StatusSuccess,
		Name:              p.ExtractName(rt),
		Email:             p.ExtractEmail(rt),
		Phone:             p.ExtractPhone(rt),
		Skills:            p.ExtractSkills(rt),
		Education:         p.ExtractEducation(rt),
		WorkExperience:    p.ExtractExperience(rt),
		ExperienceSummary: p.SummarizeExperience(rt),
		Sections:          sections,
		Summary:           p.summary(rt, sections),
		Certifications:    p.ExtractCertifications(rt),
		Projects:          projectLines(sections[SectionProjects]),
		ExtractionMethod:  method,
		TextPreview:       preview(rt.Text),
		TotalTextLength:   len(rt.Text),
	}
}

// summary prefers the segmented summary section, then the first substantial
// line, then the sentinel.
func (p *Parser) summary(rt RawText, sections map[string]string) string {
	return firstOf(
		func() (string, bool) {
			s, ok := sections[SectionSummary]
			return s, ok
		},
		func() (string, bool) {
			for _, line := range rt.Lines {
				if len(line) > summaryFallbackMinLen {
					return line, true
				}
			}
			return "", false
		},
		func() (string, bool) { return NoSummary, true },
	)
}

// firstOf returns the value of the first candidate that succeeds.
func firstOf(candidates ...func() (string, bool)) string {
	for _, c := range candidates {
		if v, ok := c(); ok {
			return v
		}
	}
	return ""
}

func preview(text string) string {
	if len(text) <= previewLimit {
		return text
	}
	return text[:previewLimit] + previewEllipsis
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
