package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"resumeapi/internal/logger"
)

type pdfStrategy struct {
	method string
	run    func(*pdf.Reader) (string, error)
}

// pdfStrategies are tried in order until one yields non-blank text.
var pdfStrategies = []pdfStrategy{
	{method: MethodPDFPlainText, run: pdfPlainText},
	{method: MethodPDFPages, run: pdfPages},
	{method: MethodPDFRows, run: pdfRows},
}

func extractPDF(ctx context.Context, data []byte) (Text, error) {
	r, err := openPDF(data)
	if err != nil {
		return Text{}, fmt.Errorf("%w: open pdf: %v", ErrMalformed, err)
	}

	for _, s := range pdfStrategies {
		if err := ctx.Err(); err != nil {
			return Text{}, err
		}
		text, err := safeRun(s, r)
		if err != nil {
			logger.Ctx(ctx).Debug().
				Str("component", "document").
				Str("method", s.method).
				Err(err).
				Msg("pdf strategy failed")
			continue
		}
		if strings.TrimSpace(text) != "" {
			return Text{Content: text, Method: s.method}, nil
		}
	}
	return Text{}, ErrNoText
}

func openPDF(data []byte) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed pdf: %v", p)
		}
	}()
	return pdf.NewReader(bytes.NewReader(data), int64(len(data)))
}

// safeRun converts a panic inside the pdf library into an error so one broken
// strategy does not prevent the next from running.
func safeRun(s pdfStrategy, r *pdf.Reader) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: %v", s.method, p)
		}
	}()
	return s.run(r)
}

func pdfPlainText(r *pdf.Reader) (string, error) {
	rd, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rd); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pdfPages(r *pdf.Reader) (string, error) {
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// pdfRows rebuilds lines from positioned glyphs, which recovers text from
// files whose content streams are not in reading order.
func pdfRows(r *pdf.Reader) (string, error) {
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		for _, row := range rows {
			b.WriteString(joinRow(row.Content))
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// joinRow concatenates the glyphs of a row left to right, inserting a space
// where the horizontal gap is wider than a fifth of the font size.
func joinRow(texts []pdf.Text) string {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var b strings.Builder
	for i, t := range sorted {
		if i > 0 {
			prev := sorted[i-1]
			if t.X-(prev.X+prev.W) > t.FontSize*0.2 {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
	}
	return b.String()
}
