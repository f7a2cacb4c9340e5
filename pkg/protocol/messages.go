package protocol

import "fmt"

// MessageType 消息类型（服务器与客户端共用一个枚举）
type MessageType int32

const (
	MessageTypeUnspecified  MessageType = 0
	MessageTypeStartGame    MessageType = 1
	MessageTypeMoveRequest  MessageType = 2
	MessageTypeEndGame      MessageType = 3
	MessageTypeNameResponse MessageType = 4
	MessageTypeMoveResponse MessageType = 5
)

var messageTypeNames = map[MessageType]string{
	MessageTypeStartGame:    "START_GAME",
	MessageTypeMoveRequest:  "MOVE_REQUEST",
	MessageTypeEndGame:      "END_GAME",
	MessageTypeNameResponse: "NAME_RESPONSE",
	MessageTypeMoveResponse: "MOVE_RESPONSE",
}

func (t MessageType) String() string {
	if s, ok := messageTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("MessageType(%d)", int32(t))
}

// MapItem 地图格子类型
type MapItem int32

const (
	MapItemBlank   MapItem = 0
	MapItemWall    MapItem = 1
	MapItemBlock   MapItem = 2
	MapItemBomb    MapItem = 3
	MapItemPowerUp MapItem = 4
)

// PowerUpType 道具类型
type PowerUpType int32

const (
	PowerUpFireUp PowerUpType = 0
	PowerUpBombUp PowerUpType = 1
)

// Move 客户端回复的动作
type Move int32

const (
	MoveStayStill          Move = 0
	MoveUp                 Move = 1
	MoveDown               Move = 2
	MoveLeft               Move = 3
	MoveRight              Move = 4
	MovePlaceBomb          Move = 5
	MovePlaceBombMoveUp    Move = 6
	MovePlaceBombMoveDown  Move = 7
	MovePlaceBombMoveLeft  Move = 8
	MovePlaceBombMoveRight Move = 9
)

var moveNames = [...]string{
	"STAY_STILL", "MOVE_UP", "MOVE_DOWN", "MOVE_LEFT", "MOVE_RIGHT",
	"PLACE_BOMB", "PLACE_BOMB_MOVE_UP", "PLACE_BOMB_MOVE_DOWN",
	"PLACE_BOMB_MOVE_LEFT", "PLACE_BOMB_MOVE_RIGHT",
}

func (m Move) String() string {
	if m >= 0 && int(m) < len(moveNames) {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", int32(m))
}

type Position struct {
	X, Y int32
}

type MapEntry struct {
	Pos  Position
	Item MapItem
}

type PlayerInfo struct {
	PlayerNumber int32
	Pos          Position
	BombRange    int32
	BombsLeft    int32
}

type BombInfo struct {
	Pos      Position
	Owner    int32
	Range    int32
	TimeLeft int32
}

type PowerUpInfo struct {
	Pos  Position
	Type PowerUpType
}

// Message 服务器下发的消息，START_GAME 与 MOVE_REQUEST 共用同一结构
type Message struct {
	Type       MessageType
	PlayerID   int32
	PlayerNum  int32
	ResponseID int32
	MapSize    *Position
	Items      []MapEntry
	Blocks     []Position
	Players    []PlayerInfo
	Bombs      []BombInfo
	PowerUps   []PowerUpInfo
	Explosions []Position
}

// MoveResponse 对 MOVE_REQUEST 的回复，回显请求中的玩家与回合编号
type MoveResponse struct {
	PlayerID   int32
	PlayerNum  int32
	ResponseID int32
	Move       Move
}

// ClientMessage 客户端发送的消息
type ClientMessage struct {
	Type         MessageType
	Name         string
	MoveResponse *MoveResponse
}
