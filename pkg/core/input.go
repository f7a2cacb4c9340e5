package core

// Direction 玩家每回合可选的五个方向
type Direction int

const (
	DirStill Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Moves 四个移动方向（不含原地不动）
var Moves = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta 方向的单位偏移，y 轴正方向向下
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Action 只移动（或原地不动）的动作
func (d Direction) Action() Action {
	switch d {
	case DirUp:
		return ActionMoveUp
	case DirDown:
		return ActionMoveDown
	case DirLeft:
		return ActionMoveLeft
	case DirRight:
		return ActionMoveRight
	default:
		return ActionStay
	}
}

// BombAction 先放炸弹再移动的动作；原地不动时只放炸弹
func (d Direction) BombAction() Action {
	switch d {
	case DirUp:
		return ActionBombMoveUp
	case DirDown:
		return ActionBombMoveDown
	case DirLeft:
		return ActionBombMoveLeft
	case DirRight:
		return ActionBombMoveRight
	default:
		return ActionPlaceBomb
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "still"
	}
}

// Action 发送给服务器的动作，词表固定
type Action int

const (
	ActionStay Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionPlaceBomb
	ActionBombMoveUp
	ActionBombMoveDown
	ActionBombMoveLeft
	ActionBombMoveRight
)

var actionNames = [...]string{
	ActionStay:          "STAYPUT",
	ActionMoveUp:        "MOVEUP",
	ActionMoveDown:      "MOVEDOWN",
	ActionMoveLeft:      "MOVELEFT",
	ActionMoveRight:     "MOVERIGHT",
	ActionPlaceBomb:     "PLACEBOMB",
	ActionBombMoveUp:    "BOMBANDMOVEUP",
	ActionBombMoveDown:  "BOMBANDMOVEDOWN",
	ActionBombMoveLeft:  "BOMBANDMOVELEFT",
	ActionBombMoveRight: "BOMBANDMOVERIGHT",
}

// Valid 是否属于固定词表
func (a Action) Valid() bool {
	return a >= ActionStay && a <= ActionBombMoveRight
}

// PlacesBomb 动作是否包含放置炸弹
func (a Action) PlacesBomb() bool {
	return a >= ActionPlaceBomb && a <= ActionBombMoveRight
}

func (a Action) String() string {
	if !a.Valid() {
		return actionNames[ActionStay]
	}
	return actionNames[a]
}

// ParseAction 解析动作名，未知名称视为原地不动
func ParseAction(s string) (Action, bool) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), true
		}
	}
	return ActionStay, false
}
