package protocol

import (
	"bombman/pkg/core"
)

// ========== 辅助构造方法 ==========

// NewNameResponse 构造握手消息，连接建立后第一条发送
func NewNameResponse(name string) *ClientMessage {
	return &ClientMessage{
		Type: MessageTypeNameResponse,
		Name: name,
	}
}

// NewMoveResponse 构造对 MOVE_REQUEST 的回复，回显请求中的玩家 ID、序号与回合编号
func NewMoveResponse(req *Message, action core.Action) *ClientMessage {
	return &ClientMessage{
		Type: MessageTypeMoveResponse,
		MoveResponse: &MoveResponse{
			PlayerID:   req.PlayerID,
			PlayerNum:  req.PlayerNum,
			ResponseID: req.ResponseID,
			Move:       CoreActionToProto(action),
		},
	}
}

// NewStartGameMessage 构造 START_GAME 消息（测试与本地对战使用）
func NewStartGameMessage(start *core.GameStart) *Message {
	size, items := CoreMapToProto(start.Map)
	msg := &Message{
		Type:      MessageTypeStartGame,
		PlayerNum: int32(start.PlayerIndex),
		MapSize:   &size,
		Items:     items,
		Players:   corePlayersToProto(start.Players),
	}
	for _, b := range start.Blocks {
		msg.Blocks = append(msg.Blocks, corePos(b))
	}
	return msg
}

// NewMoveRequestMessage 构造 MOVE_REQUEST 消息
func NewMoveRequestMessage(playerID int32, game *core.Game) *Message {
	size, items := CoreMapToProto(game.Map)
	msg := &Message{
		Type:       MessageTypeMoveRequest,
		PlayerID:   playerID,
		PlayerNum:  int32(game.PlayerIndex),
		ResponseID: int32(game.Turn),
		MapSize:    &size,
		Items:      items,
		Players:    corePlayersToProto(game.Players),
	}
	for _, b := range game.Bombs {
		msg.Bombs = append(msg.Bombs, BombInfo{
			Pos:      corePos(b.GridPos),
			Owner:    int32(b.OwnerID),
			Range:    int32(b.Range),
			TimeLeft: int32(b.TimeLeft),
		})
	}
	for _, pu := range game.PowerUps {
		t := PowerUpFireUp
		if pu.Kind == core.PowerUpBombUp {
			t = PowerUpBombUp
		}
		msg.PowerUps = append(msg.PowerUps, PowerUpInfo{Pos: corePos(pu.GridPos), Type: t})
	}
	for _, p := range game.Explosions {
		msg.Explosions = append(msg.Explosions, corePos(p))
	}
	return msg
}

// NewEndGameMessage 构造 END_GAME 消息
func NewEndGameMessage() *Message {
	return &Message{Type: MessageTypeEndGame}
}

func corePos(p core.GridPos) Position {
	return Position{X: int32(p.GridX), Y: int32(p.GridY)}
}

func corePlayersToProto(players []core.Player) []PlayerInfo {
	out := make([]PlayerInfo, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerInfo{
			PlayerNumber: int32(p.ID),
			Pos:          corePos(p.Pos),
			BombRange:    int32(p.BombRange),
			BombsLeft:    int32(p.BombsLeft),
		})
	}
	return out
}
