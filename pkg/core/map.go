package core

import (
	"fmt"
	"strings"
)

// GameMap 回合快照中的地图（核心逻辑，不包含渲染）
type GameMap struct {
	Tiles  [][]TileType // 按 [y][x] 存储
	Width  int
	Height int
}

// GridPos 格子坐标（通用类型）
type GridPos struct {
	GridX int `yaml:"x"`
	GridY int `yaml:"y"`
}

// Add 返回按方向偏移后的坐标
func (p GridPos) Add(d Direction) GridPos {
	dx, dy := d.Delta()
	return GridPos{GridX: p.GridX + dx, GridY: p.GridY + dy}
}

func (p GridPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.GridX, p.GridY)
}

// Manhattan 曼哈顿距离
func Manhattan(a, b GridPos) int {
	return absInt(a.GridX-b.GridX) + absInt(a.GridY-b.GridY)
}

// NewGameMap 创建指定大小的空地图
func NewGameMap(width, height int) *GameMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m := &GameMap{
		Tiles:  make([][]TileType, height),
		Width:  width,
		Height: height,
	}
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]TileType, width)
	}
	return m
}

// ParseGameMap 从文本模板解析地图：W=墙壁, B=砖块, X=炸弹, P=道具, 其余为空地
func ParseGameMap(rows ...string) *GameMap {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	m := NewGameMap(width, len(rows))
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case 'W':
				m.Tiles[y][x] = TileWall
			case 'B':
				m.Tiles[y][x] = TileBlock
			case 'X':
				m.Tiles[y][x] = TileBomb
			case 'P':
				m.Tiles[y][x] = TilePowerUp
			default:
				m.Tiles[y][x] = TileBlank
			}
		}
	}
	return m
}

// InBounds 坐标是否在地图内
func (m *GameMap) InBounds(p GridPos) bool {
	return p.GridX >= 0 && p.GridX < m.Width && p.GridY >= 0 && p.GridY < m.Height
}

// GetTile 获取指定位置的地图块，越界视为墙壁
func (m *GameMap) GetTile(x, y int) TileType {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height || x >= len(m.Tiles[y]) {
		return TileWall
	}
	return m.Tiles[y][x]
}

// SetTile 设置指定位置的地图块，越界忽略
func (m *GameMap) SetTile(x, y int, tile TileType) {
	if x >= 0 && x < m.Width && y >= 0 && y < m.Height && x < len(m.Tiles[y]) {
		m.Tiles[y][x] = tile
	}
}

// Classify 返回格子的唯一分类
func (m *GameMap) Classify(p GridPos) TileType {
	return m.GetTile(p.GridX, p.GridY)
}

// IsWalkable 越界或非空地/道具都不可行走
func (m *GameMap) IsWalkable(p GridPos) bool {
	if !m.InBounds(p) {
		return false
	}
	return m.Classify(p).Walkable()
}

// Clone 深拷贝地图，用于假设放置炸弹
func (m *GameMap) Clone() *GameMap {
	c := &GameMap{
		Tiles:  make([][]TileType, len(m.Tiles)),
		Width:  m.Width,
		Height: m.Height,
	}
	for y, row := range m.Tiles {
		c.Tiles[y] = append([]TileType(nil), row...)
	}
	return c
}

// String 以模板字符输出地图，便于日志和测试
func (m *GameMap) String() string {
	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			switch m.GetTile(x, y) {
			case TileWall:
				b.WriteByte('W')
			case TileBlock:
				b.WriteByte('B')
			case TileBomb:
				b.WriteByte('X')
			case TilePowerUp:
				b.WriteByte('P')
			default:
				b.WriteByte('.')
			}
		}
		if y < m.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
