package document

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxBreaks = strings.NewReplacer(
		"</w:p>", "\n",
		"<w:br/>", "\n",
		"<w:cr/>", "\n",
		"<w:tab/>", "\t",
	)
	xmlTag = regexp.MustCompile(`<[^>]*>`)
)

func extractDOCX(_ context.Context, data []byte) (Text, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Text{}, fmt.Errorf("%w: open docx: %v", ErrMalformed, err)
	}
	defer doc.Close()

	text := docxText(doc.Editable().GetContent())
	if strings.TrimSpace(text) == "" {
		return Text{}, ErrNoText
	}
	return Text{Content: text, Method: MethodDOCX}, nil
}

// docxText reduces WordprocessingML to text with one paragraph per line.
// Runs are joined without separators because Word splits words across runs.
func docxText(xml string) string {
	return html.UnescapeString(xmlTag.ReplaceAllString(docxBreaks.Replace(xml), ""))
}
