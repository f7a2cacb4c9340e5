package ai

import (
	"fmt"

	"bombman/pkg/core"
)

// MoveRanker 缩小候选集合，并列的候选全部保留，最终由策略随机选择
type MoveRanker interface {
	Name() string
	Rank(board *Blackboard, candidates []core.Direction) []core.Direction
}

func rankerByName(name string) (MoveRanker, error) {
	switch name {
	case RankerRetreat, "":
		return OpponentDistanceRanker{Maximize: true}, nil
	case RankerPursue:
		return OpponentDistanceRanker{Maximize: false}, nil
	case RankerWander:
		return WanderRanker{}, nil
	default:
		return nil, fmt.Errorf("unknown goal ranker %q", name)
	}
}

// keepBest 按输入顺序返回得分最高的候选
func keepBest(candidates []core.Direction, score func(core.Direction) int) []core.Direction {
	var best []core.Direction
	top := 0
	for _, d := range candidates {
		s := score(d)
		switch {
		case len(best) == 0 || s > top:
			best = append(best[:0], d)
			top = s
		case s == top:
			best = append(best, d)
		}
	}
	return best
}
