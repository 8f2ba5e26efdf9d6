package httpserver

import (
	"net/http"

	svg "github.com/ajstarks/svgo"
	"reversi/internal/reversi"
)

const (
	svgCell   = 48
	svgMargin = 24
)

// writeBoardSVG renders the position as a standalone SVG document:
// green board, black and white discs, small dots on the legal squares.
// Rank 8 is drawn at the top, matching the HTML table.
func writeBoardSVG(w http.ResponseWriter, p *reversi.Position) {
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")

	size := svgMargin*2 + svgCell*reversi.Files
	legal := p.LegalMoves()

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#2e7d4f")

	for rank := 0; rank < reversi.Ranks; rank++ {
		for file := 0; file < reversi.Files; file++ {
			x := svgMargin + file*svgCell
			y := svgMargin + (reversi.Ranks-1-rank)*svgCell
			canvas.Rect(x, y, svgCell, svgCell, "fill:none;stroke:#123a24")

			idx := rank*reversi.Files + file
			cx := x + svgCell/2
			cy := y + svgCell/2
			switch p.SquareAt(idx) {
			case reversi.Black:
				canvas.Circle(cx, cy, svgCell*2/5, "fill:#111")
			case reversi.White:
				canvas.Circle(cx, cy, svgCell*2/5, "fill:#fafafa;stroke:#111")
			default:
				if legal&(1<<uint(idx)) != 0 {
					canvas.Circle(cx, cy, svgCell/10, "fill:#d4e157")
				}
			}
		}
	}

	for file := 0; file < reversi.Files; file++ {
		x := svgMargin + file*svgCell + svgCell/2
		canvas.Text(x, size-svgMargin/3, string(rune('A'+file)),
			"text-anchor:middle;font-size:14px;fill:#fff")
	}
	for rank := 0; rank < reversi.Ranks; rank++ {
		y := svgMargin + (reversi.Ranks-1-rank)*svgCell + svgCell/2 + 5
		canvas.Text(svgMargin/2, y, string(rune('1'+rank)),
			"text-anchor:middle;font-size:14px;fill:#fff")
	}
	canvas.End()
}
