package reversi

type Side int8

const (
	NoSide Side = -1
	Black  Side = 0
	White  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case Black:
		return White
	case White:
		return Black
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Position = 黑白双方的位板 + 轮到谁走。值类型，复制即快照。
type Position struct {
	Black      uint64
	White      uint64
	SideToMove Side
}
