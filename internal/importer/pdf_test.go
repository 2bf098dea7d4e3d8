package importer

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

func frag(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

func TestSplitCellsByGap(t *testing.T) {
	row := pdf.TextHorizontal{
		frag("05/03/2025", 10, 48),
		frag("08:00", 100, 24), // wide gap: new cell
		frag("12:00", 128, 24), // word gap: same cell
		frag("04:00", 200, 24), // wide gap: third cell
	}

	cells := splitCells(row)
	assert.Equal(t, []string{"05/03/2025", "08:00 12:00", "04:00"}, cells)
}

func TestSplitCellsTightFragments(t *testing.T) {
	// Glyph-level fragments with no real gaps collapse into one cell.
	row := pdf.TextHorizontal{
		frag("08", 10, 10),
		frag(":", 20, 3),
		frag("00", 23, 10),
	}

	cells := splitCells(row)
	assert.Equal(t, []string{"08:00"}, cells)
}

func TestSplitCellsEmpty(t *testing.T) {
	assert.Nil(t, splitCells(nil))
}
