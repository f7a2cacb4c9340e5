package ai

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"bombman/pkg/ai/bt"
	"bombman/pkg/core"
)

// ErrNoSnapshot 回合快照中没有地图
var ErrNoSnapshot = errors.New("snapshot has no map")

// Decision 单回合随机选择之前的确定性结果
type Decision struct {
	Memory     Memory
	PlaceBomb  bool
	Candidates []core.Direction // 陷阱过滤之后
	Safe       []core.Direction
	Ranked     []core.Direction
	Strategy   string
}

// Choices 最终动作的候选集合：优先目标排序结果，其次最安全的移动，都为空时原地不动
func (d Decision) Choices() []core.Direction {
	if len(d.Ranked) > 0 {
		return d.Ranked
	}
	return d.Safe
}

// Action 把选中的方向转换为发给服务器的动作
func (d Decision) Action(dir core.Direction) core.Action {
	if d.PlaceBomb {
		return dir.BombAction()
	}
	return dir.Action()
}

// Policy 每回合决定一个动作。自身不保存对局状态，状态在传给 Decide 的 Memory 中
type Policy struct {
	config *AIConfig
	rnd    *rand.Rand
	logger log.Logger
	tree   bt.Node
}

// NewPolicy 创建策略，config 为 nil 时使用普通难度
func NewPolicy(config *AIConfig, logger log.Logger) (*Policy, error) {
	cfg := AIConfigNormal
	if config != nil {
		cfg = *config
	}
	config = &cfg
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	goal, err := rankerByName(config.GoalRanker)
	if err != nil {
		return nil, err
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	p := &Policy{
		config: config,
		rnd:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}

	p.tree = &bt.Sequence{Children: []bt.Node{
		&bt.Action{Do: actReconcile},
		&bt.Action{Do: actClassifyNeighbours},
		&bt.Selector{Children: []bt.Node{
			&bt.Sequence{Children: []bt.Node{
				&bt.Condition{Check: condHasBombCapacity},
				&bt.Condition{Check: condWantsBomb},
				&bt.Action{Do: actPlaceBomb},
			}},
			&bt.Action{Do: actPass},
		}},
		&bt.Selector{Children: []bt.Node{
			&bt.Sequence{Children: []bt.Node{
				&bt.Action{Do: actTrapFilter},
				&bt.Action{Do: actRankSafety},
				&bt.Selector{Children: []bt.Node{
					&bt.Sequence{Children: []bt.Node{
						&bt.Condition{Check: condShouldAdvance},
						&bt.Action{Do: actAdvance},
					}},
					&bt.Action{Do: actRankGoal(goal)},
				}},
			}},
			&bt.Action{Do: actStayPut},
		}},
	}}

	return p, nil
}

// GetConfig 获取当前配置
func (p *Policy) GetConfig() *AIConfig {
	return p.config
}

// NewMemory 按当前配置初始化一局的记忆
func (p *Policy) NewMemory(start *core.GameStart) Memory {
	return NewMemory(start, p.config)
}

// Evaluate 执行回合决策但不做随机选择。对 (mem, game) 是纯函数：
// 相同输入总是得到相同的 Decision
func (p *Policy) Evaluate(mem Memory, game *core.Game) (d Decision, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decision panic: %v", r)
		}
	}()

	var board Blackboard
	if err := board.ResetTurn(game, mem, p.config); err != nil {
		return Decision{}, err
	}
	p.tree.Tick(board.AsBT())

	return Decision{
		Memory:     board.Memory,
		PlaceBomb:  board.PlaceBomb,
		Candidates: board.Candidates,
		Safe:       board.Safe,
		Ranked:     board.Ranked,
		Strategy:   board.Strategy,
	}, nil
}

// Decide 返回下一回合的记忆与本回合动作。不会失败：
// 出错时记录日志，原地不动并保留原来的记忆
func (p *Policy) Decide(mem Memory, game *core.Game) (Memory, core.Action) {
	next, action, _, _ := p.DecideWithDetail(mem, game)
	return next, action
}

// DecideWithDetail 同 Decide，另外返回动作所依据的 Decision。
// 出错时 Decision 为零值并返回 err，动作仍是合法的原地不动
func (p *Policy) DecideWithDetail(mem Memory, game *core.Game) (Memory, core.Action, Decision, error) {
	turn := -1
	if game != nil {
		turn = game.Turn
	}

	d, err := p.Evaluate(mem, game)
	if err != nil {
		_ = level.Error(p.logger).Log("msg", "decision fault, staying put", "turn", turn, "err", err)
		return mem, core.ActionStay, Decision{}, err
	}

	dir := core.DirStill
	if choices := d.Choices(); len(choices) > 0 {
		dir = choices[p.rnd.Intn(len(choices))]
	}
	action := d.Action(dir)

	_ = level.Debug(p.logger).Log(
		"msg", "decision",
		"turn", turn,
		"strategy", d.Strategy,
		"bomb", d.PlaceBomb,
		"choices", fmt.Sprint(d.Choices()),
		"action", action,
		"blocks", d.Memory.BlockCount(),
	)
	return d.Memory, action, d, nil
}
