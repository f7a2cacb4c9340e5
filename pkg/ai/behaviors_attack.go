package ai

import (
	"bombman/pkg/ai/bt"
	"bombman/pkg/core"
)

// condShouldAdvance 是否沿 A* 路径前进：基地已知且未到达、可达，
// 并且剩余砖块多于 BlockFloor
func condShouldAdvance(bb bt.Blackboard) bool {
	board := bb.(*Blackboard)
	mem := board.Memory
	if !board.Config.Advance || !mem.HasBase || mem.ReachedBase {
		return false
	}
	if mem.BlockCount() <= board.Config.BlockFloor {
		return false
	}
	return PathExists(board.Grid, board.Self.Pos, mem.OpponentBase)
}

func actAdvance(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	ranker := AdvanceRanker{}
	ranked := ranker.Rank(board, board.Safe)
	if len(ranked) == 0 {
		// 下一步不安全或无路可走，交给目标排序
		return bt.StatusFailure
	}
	board.Ranked = ranked
	board.Strategy = ranker.Name()
	return bt.StatusSuccess
}

// AdvanceRanker 只保留通往对手基地最短路径的第一步
type AdvanceRanker struct{}

func (AdvanceRanker) Name() string { return "advance" }

func (AdvanceRanker) Rank(board *Blackboard, candidates []core.Direction) []core.Direction {
	path, ok := FindPath(board.Grid, board.Self.Pos, board.Memory.OpponentBase)
	if !ok {
		return nil
	}
	step, ok := FirstStep(path)
	if !ok {
		return nil
	}
	var out []core.Direction
	for _, d := range candidates {
		if board.Dest(d) == step {
			out = append(out, d)
		}
	}
	return out
}
