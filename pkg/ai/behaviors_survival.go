package ai

import (
	"bombman/pkg/ai/bt"
	"bombman/pkg/core"
)

// actTrapFilter 去掉走过去后没有可走邻格的移动（考虑本回合放下的炸弹），
// 全部被去掉时失败
func actTrapFilter(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	board.Candidates = board.Candidates[:0]
	for _, d := range board.Walkable {
		if HasEscape(board.Grid, board.Dest(d)) {
			board.Candidates = append(board.Candidates, d)
		}
	}
	if len(board.Candidates) == 0 {
		return bt.StatusFailure
	}
	return bt.StatusSuccess
}

// actRankSafety 保留离威胁炸弹最远的候选
func actRankSafety(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	board.Safe = SafetyRanker{}.Rank(board, board.Candidates)
	return bt.StatusSuccess
}

// actStayPut 所有移动都是陷阱时原地不动
func actStayPut(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	board.Candidates = nil
	board.Safe = nil
	board.Ranked = nil
	board.Strategy = "trapped"
	return bt.StatusSuccess
}

// SafetyRanker 优先选择最近威胁炸弹最远的格子
type SafetyRanker struct{}

func (SafetyRanker) Name() string { return "safety" }

func (SafetyRanker) Rank(board *Blackboard, candidates []core.Direction) []core.Direction {
	return keepBest(candidates, func(d core.Direction) int {
		return board.Danger.Distance(board.Dest(d))
	})
}
