package reversi

import "errors"

var ErrInvalidSquare = errors.New("invalid square")

// SquareToIndex 把坐标文本（列 A~H + 行 1~8，如 "D3"）转成位索引 0~63。
// 列字母大小写均可；任何其它形式返回 ErrInvalidSquare。
func SquareToIndex(square string) (int, error) {
	if len(square) != 2 {
		return 0, ErrInvalidSquare
	}
	file := square[0]
	if file >= 'a' && file <= 'h' {
		file -= 'a' - 'A'
	}
	if file < 'A' || file > 'H' {
		return 0, ErrInvalidSquare
	}
	rank := square[1]
	if rank < '1' || rank > '8' {
		return 0, ErrInvalidSquare
	}
	return indexOf(int(file-'A'), int(rank-'1')), nil
}

// IndexToSquare 是反向映射：0~63 → "A1"~"H8"。只对 0~63 有定义。
func IndexToSquare(sq int) string {
	return string([]byte{byte('A' + fileOf(sq)), byte('1' + rankOf(sq))})
}
