package core

// Explosions 上一回合正在爆炸的格子，下一回合必然消失，但可能被再次引爆
type Explosions []GridPos

// Contains 检查爆炸是否包含指定格子
func (e Explosions) Contains(p GridPos) bool {
	for _, cell := range e {
		if cell == p {
			return true
		}
	}
	return false
}

var blastDirections = []Direction{DirUp, DirDown, DirLeft, DirRight}

// BlastCells 计算炸弹最终爆炸覆盖的格子（包含中心点）
//
// 每个方向遇到第一个不是空地、道具或炸弹的格子时停止，且该格子本身不计入。
// 越界的探测直接跳过，不提前结束也不报错。
func BlastCells(b Bomb, gameMap *GameMap) []GridPos {
	cells := []GridPos{b.GridPos}

	for _, dir := range blastDirections {
		dx, dy := dir.Delta()
		for i := 1; i <= b.Range; i++ {
			cell := GridPos{GridX: b.GridX + dx*i, GridY: b.GridY + dy*i}

			// 检查边界
			if !gameMap.InBounds(cell) {
				continue
			}

			if !gameMap.Classify(cell).PassesBlast() {
				// 墙壁和砖块吸收爆炸
				break
			}

			cells = append(cells, cell)
		}
	}

	return cells
}
