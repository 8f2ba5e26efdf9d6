package game

import (
	"time"

	"reversi/internal/reversi"
)

// GameState 是一局对局在服务端的会话状态。
// Pos 指向的局面创建后不再被修改；替换局面 = 换指针。
type GameState struct {
	ID        string
	Pos       *reversi.Position
	CreatedAt time.Time
	UpdatedAt time.Time
}
