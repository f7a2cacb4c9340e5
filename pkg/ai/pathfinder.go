package ai

import (
	"container/list"

	"github.com/zyedidia/generic/mapset"

	"bombman/pkg/core"
)

// PathExists 检查能否从 start 经可走格子到达 end。
// end 本身不要求可走，与已出队的格子相邻即视为到达
func PathExists(grid *core.GameMap, start, end core.GridPos) bool {
	if start == end {
		return true
	}
	queue := list.New()
	visited := mapset.New[core.GridPos]()
	queue.PushBack(start)
	visited.Put(start)

	for queue.Len() > 0 {
		cur := queue.Remove(queue.Front()).(core.GridPos)
		for _, d := range core.Moves {
			next := cur.Add(d)
			if next == end {
				return true
			}
			if visited.Has(next) {
				continue
			}
			visited.Put(next)
			if grid.IsWalkable(next) {
				queue.PushBack(next)
			}
		}
	}
	return false
}

// HasEscape 检查 pos 是否至少有一个可走的邻格，即站在 pos 不会被困住
func HasEscape(grid *core.GameMap, pos core.GridPos) bool {
	for _, d := range core.Moves {
		if grid.IsWalkable(pos.Add(d)) {
			return true
		}
	}
	return false
}
