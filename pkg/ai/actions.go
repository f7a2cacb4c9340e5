package ai

import (
	"bombman/pkg/ai/bt"
	"bombman/pkg/core"
)

// actReconcile 删除已爆炸的砖块，并记录是否到达过对手基地
func actReconcile(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	for _, cell := range board.Game.Explosions {
		board.Memory.Blocks.Remove(cell)
	}
	if board.Memory.HasBase && board.Self.Pos == board.Memory.OpponentBase {
		board.Memory.ReachedBase = true
	}
	return bt.StatusSuccess
}

// actClassifyNeighbours 把四个相邻格子分为可走的格子和值得炸的砖块
func actClassifyNeighbours(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	for _, d := range core.Moves {
		dest := board.Dest(d)
		if board.Grid.IsWalkable(dest) {
			board.Walkable = append(board.Walkable, d)
		} else if board.Memory.Blocks.Has(dest) {
			board.NeighborBlocks = append(board.NeighborBlocks, dest)
		}
	}
	return bt.StatusSuccess
}

func condHasBombCapacity(bb bt.Blackboard) bool {
	board := bb.(*Blackboard)
	if board.Self.BombsLeft <= 0 {
		return false
	}
	if _, occupied := board.Game.BombAt(board.Self.Pos); occupied {
		return false
	}
	return board.Game.OwnBombs(board.Self.ID) < board.Config.MaxOwnBombs
}

func condWantsBomb(bb bt.Blackboard) bool {
	board := bb.(*Blackboard)
	cfg := board.Config
	if cfg.BombBlocks && len(board.NeighborBlocks) > 0 {
		return true
	}
	if cfg.BombOpponent && board.HasOpponent &&
		core.Manhattan(board.Self.Pos, board.Opponent.Pos) <= cfg.BombProximity {
		return true
	}
	return false
}

// actPlaceBomb 记录放炸弹的决定，并把炸弹写入本回合的地图，
// 之后的陷阱过滤与危险排序都会考虑它
func actPlaceBomb(bb bt.Blackboard) bt.Status {
	board := bb.(*Blackboard)
	pos := board.Self.Pos
	board.PlaceBomb = true
	board.Grid.SetTile(pos.GridX, pos.GridY, core.TileBomb)
	board.Bombs = append(board.Bombs, core.NewBomb(pos, board.Self.ID, board.Self.BombRange))
	board.Danger.Update(board.Grid, board.Bombs)
	return bt.StatusSuccess
}

// actPass 可选分支失败时不影响父节点
func actPass(bt.Blackboard) bt.Status {
	return bt.StatusSuccess
}
