package core

// Bomb 炸弹（纯逻辑结构，由服务器每回合下发）
// 引信为 0 的炸弹已被服务器结算，不会出现在快照中
type Bomb struct {
	GridPos
	OwnerID  int // 放置者的玩家序号
	Range    int // 四个方向的爆炸范围（格子数）
	TimeLeft int // 剩余引信回合数
}

// NewBomb 创建新炸弹
func NewBomb(pos GridPos, ownerID, rng int) Bomb {
	if rng < 0 {
		rng = 0
	}
	return Bomb{
		GridPos:  pos,
		OwnerID:  ownerID,
		Range:    rng,
		TimeLeft: DefaultBombFuseTicks,
	}
}

// PowerUpKind 道具类型
type PowerUpKind int

const (
	PowerUpFireUp PowerUpKind = iota // 爆炸范围 +1
	PowerUpBombUp                    // 可用炸弹 +1
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpFireUp:
		return "FIREUP"
	case PowerUpBombUp:
		return "BOMBUP"
	default:
		return "UNKNOWN"
	}
}

// PowerUp 地图上的道具，接触即被服务器消耗
type PowerUp struct {
	GridPos
	Kind PowerUpKind
}
