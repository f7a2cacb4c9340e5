package ai

import (
	"fmt"

	"bombman/pkg/core"
)

// 目标排序策略名称
const (
	RankerRetreat = "retreat" // 远离对手
	RankerPursue  = "pursue"  // 接近对手
	RankerWander  = "wander"  // 随机游走，不做目标排序
)

// AIConfig 定义 AI 的行为参数
type AIConfig struct {
	// BombBlocks 相邻有可摧毁砖块时放炸弹
	BombBlocks bool `yaml:"bomb_blocks"`

	// BombOpponent 对手进入 BombProximity 曼哈顿距离内时放炸弹
	BombOpponent  bool `yaml:"bomb_opponent"`
	BombProximity int  `yaml:"bomb_proximity"`

	// MaxOwnBombs 同时存在的自己的炸弹上限（比游戏规则更保守）
	MaxOwnBombs int `yaml:"max_own_bombs"`

	// Advance 是否沿 A* 路径前往对手基地
	// 砖块数量降到 BlockFloor 及以下后不再前进
	Advance    bool `yaml:"advance"`
	BlockFloor int  `yaml:"block_floor"`

	// GoalRanker 不前进时的目标排序策略：retreat / pursue / wander
	GoalRanker string `yaml:"goal_ranker"`

	// Lairs 按玩家序号给出的基地坐标，为空时使用双方开局位置
	Lairs []core.GridPos `yaml:"lairs"`

	// Seed 随机种子，0 表示按时间播种
	Seed int64 `yaml:"seed"`
}

// 预设配置：普通难度，寻找对手基地，否则远离对手
var AIConfigNormal = AIConfig{
	BombBlocks:    true,
	BombOpponent:  true,
	BombProximity: 5,
	MaxOwnBombs:   1,
	Advance:       true,
	BlockFloor:    5,
	GoalRanker:    RankerRetreat,
}

// 预设配置：进攻型，不去基地，直接追击对手
var AIConfigAggressive = AIConfig{
	BombBlocks:    true,
	BombOpponent:  true,
	BombProximity: 5,
	MaxOwnBombs:   1,
	Advance:       false,
	BlockFloor:    5,
	GoalRanker:    RankerPursue,
}

// 预设配置：只炸砖块并随机游走
var AIConfigWander = AIConfig{
	BombBlocks:  true,
	MaxOwnBombs: 1,
	GoalRanker:  RankerWander,
}

// Preset 按名称返回预设配置的副本
func Preset(name string) (AIConfig, error) {
	switch name {
	case "", "normal":
		return AIConfigNormal, nil
	case "aggressive":
		return AIConfigAggressive, nil
	case "wander":
		return AIConfigWander, nil
	default:
		return AIConfig{}, fmt.Errorf("unknown ai preset %q", name)
	}
}

// Validate 检查配置取值
func (c *AIConfig) Validate() error {
	if c.MaxOwnBombs < 0 {
		return fmt.Errorf("max_own_bombs must not be negative, got %d", c.MaxOwnBombs)
	}
	if c.BombProximity < 0 {
		return fmt.Errorf("bomb_proximity must not be negative, got %d", c.BombProximity)
	}
	if _, err := rankerByName(c.GoalRanker); err != nil {
		return err
	}
	if n := len(c.Lairs); n != 0 && n != core.PlayerCount {
		return fmt.Errorf("lairs needs %d entries, got %d", core.PlayerCount, n)
	}
	return nil
}
