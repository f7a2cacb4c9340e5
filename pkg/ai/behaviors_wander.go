package ai

import (
	"bombman/pkg/ai/bt"
	"bombman/pkg/core"
)

func actRankGoal(ranker MoveRanker) bt.ActionFunc {
	return func(bb bt.Blackboard) bt.Status {
		board := bb.(*Blackboard)
		board.Ranked = ranker.Rank(board, board.Safe)
		board.Strategy = ranker.Name()
		return bt.StatusSuccess
	}
}

// OpponentDistanceRanker 按与对手的曼哈顿距离排序：
// Maximize 时取最远（retreat），否则取最近（pursue）
type OpponentDistanceRanker struct {
	Maximize bool
}

func (r OpponentDistanceRanker) Name() string {
	if r.Maximize {
		return RankerRetreat
	}
	return RankerPursue
}

func (r OpponentDistanceRanker) Rank(board *Blackboard, candidates []core.Direction) []core.Direction {
	if !board.HasOpponent {
		return candidates
	}
	return keepBest(candidates, func(d core.Direction) int {
		dist := core.Manhattan(board.Dest(d), board.Opponent.Pos)
		if r.Maximize {
			return dist
		}
		return -dist
	})
}

// WanderRanker 保留全部候选，随机选择
type WanderRanker struct{}

func (WanderRanker) Name() string { return RankerWander }

func (WanderRanker) Rank(_ *Blackboard, candidates []core.Direction) []core.Direction {
	return candidates
}
