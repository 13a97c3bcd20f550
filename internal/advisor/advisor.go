// Package advisor asks a generative model for career guidance on an analysed
// résumé.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resumeapi/internal/resume"
)

// Advisor produces free-form, markdown-formatted guidance for a record.
type Advisor interface {
	Advise(ctx context.Context, rec *resume.Record, suggestions []string) (string, error)
}

var ErrEmptyResponse = errors.New("advisor returned an empty response")

const guidanceTitle = "Career Guidance"

// FallbackAdvice is returned to callers in place of model output when the
// advisor fails.
func FallbackAdvice(err error) string {
	return fmt.Sprintf(`**%s Unavailable**

**Error:** %v

**Fallback Suggestions:**
- Strengthen your project portfolio
- Join relevant communities and network
- Contribute to open-source repositories
- Refine your resume and LinkedIn profile
`, guidanceTitle, err)
}

// BuildPrompt renders the candidate profile and the requested outline.
func BuildPrompt(rec *resume.Record, suggestions []string) string {
	var b strings.Builder
	b.WriteString("You are a professional AI career advisor.\n\nCandidate Profile:\n")
	fmt.Fprintf(&b, "- Name: %s\n", orDefault(rec.Name, resume.NameNotFound, "Candidate"))
	fmt.Fprintf(&b, "- Skills: %s\n", joinOr(rec.Skills, ", ", "No specific skills"))
	fmt.Fprintf(&b, "- Summary: %s\n", rec.Summary)
	fmt.Fprintf(&b, "- Work Experience: %s\n", experienceLine(rec))
	fmt.Fprintf(&b, "- Education: %s\n", educationLine(rec.Education))
	fmt.Fprintf(&b, "- Certifications: %s\n", joinOr(rec.Certifications, ", ", "No certifications listed"))
	fmt.Fprintf(&b, "- Projects: %s\n", joinOr(rec.Projects, "; ", "No projects listed"))
	if len(suggestions) > 0 {
		fmt.Fprintf(&b, "- Suggested Roles: %s\n", strings.Join(suggestions, ", "))
	}
	b.WriteString(`
Now provide:
1. Career Path Suggestions (2-3 options)
2. Technical Skills to Focus On (3 skills)
3. Soft Skills to Build (2 soft skills)
4. A 30-Day Action Plan (step-wise)
5. Industry Market Insight
6. One Personalized Tip
`)
	return b.String()
}

// FormatWithHeadings puts a bold title above text and turns "1." to "10."
// markers into bold headings on their own paragraph.
func FormatWithHeadings(text, title string) string {
	text = strings.TrimSpace(text)
	if title != "" {
		text = "**" + title + "**\n\n" + text
	}
	for i := 10; i >= 1; i-- {
		marker := fmt.Sprintf("%d.", i)
		text = replaceMarker(text, marker, fmt.Sprintf("\n\n**%d.**", i))
	}
	return strings.TrimSpace(text)
}

// replaceMarker replaces marker unless it sits inside a number ("2019.",
// "1.5") or is already formatted.
func replaceMarker(text, marker, repl string) string {
	var b strings.Builder
	for {
		i := strings.Index(text, marker)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		end := i + len(marker)
		inNumber := (i > 0 && isDigit(text[i-1])) || (end < len(text) && isDigit(text[end]))
		if inNumber || strings.HasPrefix(text[i:], marker+"**") {
			b.WriteString(text[:end])
		} else {
			b.WriteString(text[:i])
			b.WriteString(repl)
		}
		text = text[end:]
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func experienceLine(rec *resume.Record) string {
	if len(rec.WorkExperience) == 0 {
		return rec.ExperienceSummary
	}
	titles := make([]string, 0, len(rec.WorkExperience))
	for _, e := range rec.WorkExperience {
		titles = append(titles, e.Title)
	}
	return strings.Join(titles, "; ")
}

func educationLine(entries []resume.EducationEntry) string {
	if len(entries) == 0 {
		return "No education details"
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		year := ""
		if e.Year != nil {
			year = *e.Year
		}
		parts = append(parts, fmt.Sprintf("%s from %s (%s)", e.Degree, e.Institution, year))
	}
	return strings.Join(parts, "; ")
}

func joinOr(items []string, sep, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, sep)
}

func orDefault(v, sentinel, def string) string {
	if v == "" || v == sentinel {
		return def
	}
	return v
}
