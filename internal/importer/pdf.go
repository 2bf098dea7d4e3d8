package importer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Horizontal gaps wider than this many points split a row into cells;
// smaller positive gaps are word boundaries inside one cell.
const (
	cellGap = 12.0
	wordGap = 1.0
)

// ReadDocument extracts all page content of a PDF file up front, so that
// merging only ever starts after the whole document parsed. The pdf
// library panics on some malformed files; that is converted to an error
// here rather than crossing the import boundary.
func ReadDocument(path string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed document: %v", r)
		}
	}()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	doc = Document{Raw: raw}
	for i := 1; i <= reader.NumPage(); i++ {
		p := reader.Page(i)
		if p.V.IsNull() {
			continue
		}

		page := Page{}
		if rows, err := p.GetTextByRow(); err == nil {
			for _, row := range rows {
				if cells := splitCells(row.Content); len(cells) > 0 {
					page.Rows = append(page.Rows, cells)
				}
			}
		}
		if text, err := p.GetPlainText(nil); err == nil {
			page.Text = text
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// splitCells groups a row's positioned text fragments into cells by the
// horizontal gaps between them.
func splitCells(fragments pdf.TextHorizontal) []string {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make(pdf.TextHorizontal, len(fragments))
	copy(sorted, fragments)
	sort.Sort(sorted)

	var cells []string
	var cell strings.Builder
	prevEnd := sorted[0].X

	for i, frag := range sorted {
		gap := frag.X - prevEnd
		switch {
		case i > 0 && gap > cellGap:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		case i > 0 && gap > wordGap:
			cell.WriteByte(' ')
		}
		cell.WriteString(frag.S)
		prevEnd = frag.X + frag.W
	}
	if s := strings.TrimSpace(cell.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}
