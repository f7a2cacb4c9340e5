package core

// 对局配置
const (
	PlayerCount = 2 // 每局固定两名玩家：自己和对手
)

// 炸弹配置（回合）
const (
	DefaultBombRange     = 1  // 初始爆炸范围（格子数）
	DefaultBombFuseTicks = 15 // 新放置炸弹的引信回合数，仅用于本地预测
)

// TileType 地图块类型
type TileType int

const (
	TileBlank   TileType = iota // 空地
	TileWall                    // 永久墙壁，不可摧毁
	TileBlock                   // 可被炸毁的砖块
	TileBomb                    // 未爆炸的炸弹
	TilePowerUp                 // 道具
)

func (t TileType) String() string {
	switch t {
	case TileBlank:
		return "blank"
	case TileWall:
		return "wall"
	case TileBlock:
		return "block"
	case TileBomb:
		return "bomb"
	case TilePowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Walkable 只有空地和道具可以行走
func (t TileType) Walkable() bool {
	return t == TileBlank || t == TilePowerUp
}

// PassesBlast 爆炸可以穿过空地、道具和炸弹
func (t TileType) PassesBlast() bool {
	return t == TileBlank || t == TilePowerUp || t == TileBomb
}
