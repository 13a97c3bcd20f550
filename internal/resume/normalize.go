package resume

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RawText is the normalized document text together with its non-empty,
// trimmed lines. It is never modified after Normalize returns it.
type RawText struct {
	Text  string
	Lines []string

	// raw keeps every trimmed line, blank runs uncollapsed.
	raw []string
}

// Empty reports whether normalization left nothing to extract from.
func (rt RawText) Empty() bool {
	return len(rt.Lines) == 0
}

// rawLines returns the document's lines as written, blank lines included,
// without leading or trailing blanks.
func (rt RawText) rawLines() []string {
	return rt.raw
}

// textLines returns the lines of Text, where blank runs are already collapsed.
func (rt RawText) textLines() []string {
	if rt.Text == "" {
		return nil
	}
	return strings.Split(rt.Text, "\n")
}

var (
	// Characters NFKD leaves alone but which have an obvious ASCII spelling.
	typographic = strings.NewReplacer(
		"‘", "'", "’", "'", "‚", "'", "‛", "'", "′", "'",
		"“", `"`, "”", `"`, "„", `"`, "″", `"`,
		"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-",
		"―", "-", "−", "-", "⁃", "-",
		"•", "*", "●", "*", "▪", "*", "◦", "*", "‣", "*",
		"·", "*", "\uf0b7", "*", "➢", "*",
		"\u200b", "", "\u00ad", "", "\ufeff", "",
		"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
		"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d",
		"Đ", "D", "þ", "th", "Þ", "Th", "ð", "d",
		"\r\n", "\n", "\r", "\n", "\f", "\n", "\v", "\n",
	)

	horizontalSpace = regexp.MustCompile(`[ \t]+`)
	blankRuns       = regexp.MustCompile(`\n{3,}`)
)

// Normalize transliterates text to ASCII, collapses horizontal whitespace and
// splits it into lines. Empty or unreadable input yields an empty RawText.
func Normalize(raw string) RawText {
	if strings.TrimSpace(raw) == "" {
		return RawText{}
	}

	text := transliterate(typographic.Replace(raw))

	lines := strings.Split(text, "\n")
	nonEmpty := make([]string, 0, len(lines))
	first, last := -1, -1
	for i, line := range lines {
		line = strings.TrimSpace(horizontalSpace.ReplaceAllString(line, " "))
		lines[i] = line
		if line != "" {
			nonEmpty = append(nonEmpty, line)
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if len(nonEmpty) == 0 {
		return RawText{}
	}

	span := lines[first : last+1]
	return RawText{
		Text:  blankRuns.ReplaceAllString(strings.Join(span, "\n"), "\n\n"),
		Lines: nonEmpty,
		raw:   span,
	}
}

// transliterate romanizes s with unidecode after NFKC folding. Control
// characters become spaces.
func transliterate(s string) string {
	t := transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	ascii := unidecode.Unidecode(folded)

	var b strings.Builder
	b.Grow(len(ascii))
	for _, r := range ascii {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			b.WriteByte(' ')
		case r < 0x80:
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return b.String()
}
