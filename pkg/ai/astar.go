package ai

import (
	"container/heap"

	"bombman/pkg/core"
)

type searchNode struct {
	pos    core.GridPos
	parent *searchNode
	g, f   int
	seq    int // 发现顺序，f 相同时先发现的优先
	index  int // 在堆中的下标，出堆后为 -1
}

type nodeHeap []*searchNode

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// FindPath 在四连通网格上用曼哈顿距离做 A* 搜索
//
// 返回的路径不含起点，按终点在前排列，第一步是 path[len(path)-1]。
// 与 PathExists 一致，终点本身不要求可走。无路径时 ok 为 false。
func FindPath(grid *core.GameMap, start, goal core.GridPos) (path []core.GridPos, ok bool) {
	if start == goal {
		return []core.GridPos{}, true
	}

	open := &nodeHeap{}
	heap.Init(open)
	nodes := make(map[core.GridPos]*searchNode)
	seq := 0

	startNode := &searchNode{pos: start, f: core.Manhattan(start, goal), seq: seq}
	nodes[start] = startNode
	heap.Push(open, startNode)

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if current.pos == goal {
			for n := current; n.parent != nil; n = n.parent {
				path = append(path, n.pos)
			}
			return path, true
		}

		for _, d := range core.Moves {
			next := current.pos.Add(d)
			if next != goal && !grid.IsWalkable(next) {
				continue
			}
			g := current.g + 1
			n, seen := nodes[next]
			switch {
			case !seen:
				seq++
				n = &searchNode{pos: next, parent: current, g: g, f: g + core.Manhattan(next, goal), seq: seq}
				nodes[next] = n
				heap.Push(open, n)
			case g < n.g:
				n.parent = current
				n.f = g + (n.f - n.g)
				n.g = g
				if n.index >= 0 {
					heap.Fix(open, n.index)
				} else {
					// 已关闭但找到更短路径，重新加入
					heap.Push(open, n)
				}
			}
		}
	}
	return nil, false
}

// FirstStep 返回 FindPath 路径上与起点相邻的格子
func FirstStep(path []core.GridPos) (core.GridPos, bool) {
	if len(path) == 0 {
		return core.GridPos{}, false
	}
	return path[len(path)-1], true
}
