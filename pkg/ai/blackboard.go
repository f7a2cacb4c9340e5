package ai

import (
	"github.com/zyedidia/generic/mapset"

	"bombman/pkg/ai/bt"
	"bombman/pkg/core"
)

// Memory 一局游戏中策略自己的状态。服务器不会重发，每回合传入并返回
type Memory struct {
	// Blocks 认为仍然存在的可摧毁砖块，只会在观察到爆炸时删除
	Blocks mapset.Set[core.GridPos]

	ReachedBase  bool
	OpponentBase core.GridPos
	HasBase      bool
}

// NewMemory 根据开局信息初始化记忆。对手基地优先取 cfg.Lairs，
// 否则取对手开局位置。start 为 nil 时返回没有基地的空记忆
func NewMemory(start *core.GameStart, cfg *AIConfig) Memory {
	mem := Memory{Blocks: mapset.New[core.GridPos]()}
	if start == nil {
		return mem
	}
	for _, b := range start.Blocks {
		mem.Blocks.Put(b)
	}

	opp := 1 - start.PlayerIndex
	if cfg != nil && len(cfg.Lairs) == core.PlayerCount && opp >= 0 && opp < core.PlayerCount {
		mem.OpponentBase = cfg.Lairs[opp]
		mem.HasBase = true
	} else if p, err := start.Opponent(); err == nil {
		mem.OpponentBase = p.Pos
		mem.HasBase = true
	}
	return mem
}

// Clone 复制砖块集合，返回的记忆可以随意修改
func (m Memory) Clone() Memory {
	c := m
	c.Blocks = mapset.New[core.GridPos]()
	m.Blocks.Each(func(p core.GridPos) {
		c.Blocks.Put(p)
	})
	return c
}

func (m Memory) BlockCount() int {
	return m.Blocks.Size()
}

// Blackboard 单回合决策读写的全部数据
type Blackboard struct {
	Game        *core.Game
	Config      *AIConfig
	Self        core.Player
	Opponent    core.Player
	HasOpponent bool

	// Memory 本回合更新后的副本，返回给下一回合
	Memory Memory

	// 决定放炸弹后 Grid 与 Bombs 包含这颗假想炸弹
	Grid   *core.GameMap
	Bombs  []core.Bomb
	Danger DangerField

	Walkable       []core.Direction
	NeighborBlocks []core.GridPos
	PlaceBomb      bool

	Candidates []core.Direction // 通过陷阱过滤
	Safe       []core.Direction // 威胁距离最大
	Ranked     []core.Direction // 通过目标排序
	Strategy   string
}

func (bb *Blackboard) ResetTurn(game *core.Game, mem Memory, cfg *AIConfig) error {
	if game == nil || game.Map == nil {
		return ErrNoSnapshot
	}
	self, err := game.Self()
	if err != nil {
		return err
	}
	*bb = Blackboard{
		Game:   game,
		Config: cfg,
		Self:   self,
		Memory: mem.Clone(),
		Grid:   game.Map.Clone(),
		Bombs:  append([]core.Bomb(nil), game.Bombs...),
	}
	if opp, err := game.Opponent(); err == nil {
		bb.Opponent = opp
		bb.HasOpponent = true
	}
	// 即使地图没有标出，炸弹所在格子也不可走
	for _, b := range bb.Bombs {
		bb.Grid.SetTile(b.GridX, b.GridY, core.TileBomb)
	}
	bb.Danger.Update(bb.Grid, bb.Bombs)
	return nil
}

// Dest 本回合向 d 移动后到达的格子
func (bb *Blackboard) Dest(d core.Direction) core.GridPos {
	return bb.Self.Pos.Add(d)
}

func (bb *Blackboard) AsBT() bt.Blackboard {
	return bb
}
