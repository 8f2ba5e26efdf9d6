package reversi

import "strings"

const (
	blackGlyph = "●"
	whiteGlyph = "○"
	emptyGlyph = "-"
)

// String 以人类可读的形式输出盘面：第 8 行在上、第 1 行在下，
// 两侧标行号，上下标列字母。
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString("  A B C D E F G H\n")
	for r := Ranks - 1; r >= 0; r-- {
		sb.WriteByte(byte('1' + r))
		sb.WriteByte(' ')
		for f := 0; f < Files; f++ {
			switch p.SquareAt(indexOf(f, r)) {
			case Black:
				sb.WriteString(blackGlyph)
			case White:
				sb.WriteString(whiteGlyph)
			default:
				sb.WriteString(emptyGlyph)
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('1' + r))
		sb.WriteByte('\n')
	}
	sb.WriteString("  A B C D E F G H\n")
	return sb.String()
}
