package reversi

import (
	"errors"
	"strings"
)

// 简单 FEN-like：8 行按行号 1→8 用 "/" 隔开，x=黑 o=白，空位用数字压缩；
// 空格后 b/w 表示手番。开局即 "8/8/8/3xo3/3ox3/8/8/8 b"。
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Ranks; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			side := p.SquareAt(indexOf(f, r))
			if side == NoSide {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if side == Black {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('o')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodePosition 还原 Encode 的输出。非法文本返回 ErrInvalidFEN；
// 成功时局面与编码前逐位一致，因此合法手集合也一致。
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) != 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return nil, ErrInvalidFEN
	}

	pos := &Position{}
	for r := 0; r < Ranks; r++ {
		f := 0
		for i := 0; i < len(rows[r]); i++ {
			if f >= Files {
				return nil, ErrInvalidFEN
			}
			switch ch := rows[r][i]; {
			case ch >= '1' && ch <= '8':
				f += int(ch - '0')
			case ch == 'x':
				pos.Black |= 1 << uint(indexOf(f, r))
				f++
			case ch == 'o':
				pos.White |= 1 << uint(indexOf(f, r))
				f++
			default:
				return nil, ErrInvalidFEN
			}
		}
		if f != Files {
			return nil, ErrInvalidFEN
		}
	}

	switch parts[1] {
	case "b":
		pos.SideToMove = Black
	case "w":
		pos.SideToMove = White
	default:
		return nil, ErrInvalidFEN
	}
	return pos, nil
}
