package core

// Player 玩家状态（每回合由服务器下发）
type Player struct {
	ID        int     // 玩家序号（0 或 1）
	Pos       GridPos // 当前所在格子
	BombRange int     // 放置炸弹时的爆炸范围
	BombsLeft int     // 当前可用炸弹数
}
