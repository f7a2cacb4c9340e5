package ai

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"bombman/pkg/core"
)

// NoThreat 没有炸弹能波及的格子的威胁距离
const NoThreat = math.MaxInt32

// BlastTiles 返回炸弹爆炸覆盖的全部格子，吸收爆炸的墙壁和砖块不计入
func BlastTiles(b core.Bomb, grid *core.GameMap) mapset.Set[core.GridPos] {
	tiles := mapset.New[core.GridPos]()
	for _, cell := range core.BlastCells(b, grid) {
		tiles.Put(cell)
	}
	return tiles
}

// DistanceToNearestThreat 返回 pos 到能波及它的最近炸弹的距离，没有时为 NoThreat
func DistanceToNearestThreat(pos core.GridPos, bombs []core.Bomb, grid *core.GameMap) int {
	var df DangerField
	df.Update(grid, bombs)
	return df.Distance(pos)
}

type blast struct {
	bomb  core.Bomb
	tiles mapset.Set[core.GridPos]
}

// DangerField 缓存本回合所有炸弹的爆炸范围
type DangerField struct {
	blasts []blast
	fuse   map[core.GridPos]int
}

func (df *DangerField) Update(grid *core.GameMap, bombs []core.Bomb) {
	df.blasts = df.blasts[:0]
	for _, b := range bombs {
		df.blasts = append(df.blasts, blast{bomb: b, tiles: BlastTiles(b, grid)})
	}

	// 传播连锁爆炸直到稳定
	actual := make([]int, len(df.blasts))
	for i, bl := range df.blasts {
		actual[i] = bl.bomb.TimeLeft
	}
	changed := true
	for changed {
		changed = false
		for i, bl := range df.blasts {
			for j, other := range df.blasts {
				if i == j || !bl.tiles.Has(other.bomb.GridPos) {
					continue
				}
				if actual[j] > actual[i] {
					actual[j] = actual[i]
					changed = true
				}
			}
		}
	}

	df.fuse = make(map[core.GridPos]int)
	for i, bl := range df.blasts {
		when := actual[i]
		bl.tiles.Each(func(p core.GridPos) {
			if cur, ok := df.fuse[p]; !ok || when < cur {
				df.fuse[p] = when
			}
		})
	}
}

// Distance pos 到威胁它的炸弹的最短距离，越大越安全；不在任何爆炸范围内时为 NoThreat
func (df *DangerField) Distance(pos core.GridPos) int {
	best := NoThreat
	for _, bl := range df.blasts {
		if !bl.tiles.Has(pos) {
			continue
		}
		if d := core.Manhattan(pos, bl.bomb.GridPos); d < best {
			best = d
		}
	}
	return best
}

func (df *DangerField) InDanger(pos core.GridPos) bool {
	_, ok := df.fuse[pos]
	return ok
}

// Fuse 返回 pos 最早被引爆的回合数（包含连锁爆炸）
func (df *DangerField) Fuse(pos core.GridPos) (int, bool) {
	when, ok := df.fuse[pos]
	return when, ok
}
