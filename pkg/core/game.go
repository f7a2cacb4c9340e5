package core

import (
	"errors"
	"fmt"
)

// ErrMissingPlayer 快照中缺少所需的玩家条目
var ErrMissingPlayer = errors.New("missing player entry")

// Game 单回合的不可变快照（纯逻辑，不包含渲染）
type Game struct {
	Map         *GameMap
	Bombs       []Bomb
	PowerUps    []PowerUp
	Players     []Player
	Explosions  Explosions
	PlayerIndex int // 自己的玩家序号
	Turn        int // 单调递增的回合/响应编号
}

// GameStart 对局开始时服务器下发的信息
type GameStart struct {
	Map         *GameMap
	Blocks      []GridPos // 可摧毁砖块的坐标
	Players     []Player
	PlayerIndex int
}

// Self 返回自己的状态
func (g *Game) Self() (Player, error) {
	return findPlayer(g.Players, g.PlayerIndex)
}

// Opponent 返回对手的状态
func (g *Game) Opponent() (Player, error) {
	for _, p := range g.Players {
		if p.ID != g.PlayerIndex {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("opponent of player %d: %w", g.PlayerIndex, ErrMissingPlayer)
}

// BombAt 返回指定格子上的炸弹
func (g *Game) BombAt(p GridPos) (Bomb, bool) {
	for _, b := range g.Bombs {
		if b.GridPos == p {
			return b, true
		}
	}
	return Bomb{}, false
}

// OwnBombs 统计某玩家尚未爆炸的炸弹数量
func (g *Game) OwnBombs(playerID int) int {
	n := 0
	for _, b := range g.Bombs {
		if b.OwnerID == playerID {
			n++
		}
	}
	return n
}

// Self 返回开局时自己的状态
func (s *GameStart) Self() (Player, error) {
	return findPlayer(s.Players, s.PlayerIndex)
}

// Opponent 返回开局时对手的状态
func (s *GameStart) Opponent() (Player, error) {
	for _, p := range s.Players {
		if p.ID != s.PlayerIndex {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("opponent of player %d: %w", s.PlayerIndex, ErrMissingPlayer)
}

func findPlayer(players []Player, id int) (Player, error) {
	for _, p := range players {
		if p.ID == id {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("player %d: %w", id, ErrMissingPlayer)
}
