package protocol

import (
	"errors"
	"fmt"

	"bombman/pkg/core"
)

// MaxMapTiles 地图格子数上限，mapSize 来自网络，必须在分配内存前检查
const MaxMapTiles = 1 << 16

// ErrMapSize mapSize 为负数或超过 MaxMapTiles
var ErrMapSize = errors.New("invalid map size")

func checkMapSize(size *Position) error {
	if size == nil {
		return missing("BomberManMessage", "mapSize")
	}
	if size.X < 0 || size.Y < 0 || int64(size.X)*int64(size.Y) > MaxMapTiles {
		return fmt.Errorf("%w: %dx%d", ErrMapSize, size.X, size.Y)
	}
	return nil
}

// ========== Action 转换 ==========

var actionToMove = map[core.Action]Move{
	core.ActionStay:          MoveStayStill,
	core.ActionMoveUp:        MoveUp,
	core.ActionMoveDown:      MoveDown,
	core.ActionMoveLeft:      MoveLeft,
	core.ActionMoveRight:     MoveRight,
	core.ActionPlaceBomb:     MovePlaceBomb,
	core.ActionBombMoveUp:    MovePlaceBombMoveUp,
	core.ActionBombMoveDown:  MovePlaceBombMoveDown,
	core.ActionBombMoveLeft:  MovePlaceBombMoveLeft,
	core.ActionBombMoveRight: MovePlaceBombMoveRight,
}

// CoreActionToProto 将动作映射为协议中的 Move，未知动作一律为 STAY_STILL
func CoreActionToProto(a core.Action) Move {
	if m, ok := actionToMove[a]; ok {
		return m
	}
	return MoveStayStill
}

// ProtoMoveToCore 将 Move 转换回动作，未知值视为原地不动
func ProtoMoveToCore(m Move) core.Action {
	for a, mv := range actionToMove {
		if mv == m {
			return a
		}
	}
	return core.ActionStay
}

// ========== 地图转换 ==========

// ProtoMapItemToCore 将 MapItem 转换为 core.TileType，未知值视为墙壁
func ProtoMapItemToCore(item MapItem) core.TileType {
	switch item {
	case MapItemBlank:
		return core.TileBlank
	case MapItemWall:
		return core.TileWall
	case MapItemBlock:
		return core.TileBlock
	case MapItemBomb:
		return core.TileBomb
	case MapItemPowerUp:
		return core.TilePowerUp
	default:
		return core.TileWall
	}
}

// CoreTileToProto 将 core.TileType 转换为 MapItem
func CoreTileToProto(t core.TileType) MapItem {
	switch t {
	case core.TileWall:
		return MapItemWall
	case core.TileBlock:
		return MapItemBlock
	case core.TileBomb:
		return MapItemBomb
	case core.TilePowerUp:
		return MapItemPowerUp
	default:
		return MapItemBlank
	}
}

func protoPos(p Position) core.GridPos {
	return core.GridPos{GridX: int(p.X), GridY: int(p.Y)}
}

// ProtoMapToCore 根据地图尺寸与格子列表构建地图，未列出的格子为空地
func ProtoMapToCore(size Position, items []MapEntry) *core.GameMap {
	m := core.NewGameMap(int(size.X), int(size.Y))
	for _, it := range items {
		m.SetTile(int(it.Pos.X), int(it.Pos.Y), ProtoMapItemToCore(it.Item))
	}
	return m
}

// CoreMapToProto 将地图展开为格子列表（用于测试中的假服务器）
func CoreMapToProto(m *core.GameMap) (Position, []MapEntry) {
	size := Position{X: int32(m.Width), Y: int32(m.Height)}
	items := make([]MapEntry, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			items = append(items, MapEntry{
				Pos:  Position{X: int32(x), Y: int32(y)},
				Item: CoreTileToProto(m.GetTile(x, y)),
			})
		}
	}
	return size, items
}

// ========== 实体转换 ==========

func ProtoPlayersToCore(players []PlayerInfo) []core.Player {
	out := make([]core.Player, 0, len(players))
	for _, p := range players {
		out = append(out, core.Player{
			ID:        int(p.PlayerNumber),
			Pos:       protoPos(p.Pos),
			BombRange: int(p.BombRange),
			BombsLeft: int(p.BombsLeft),
		})
	}
	return out
}

func ProtoBombsToCore(bombs []BombInfo) []core.Bomb {
	out := make([]core.Bomb, 0, len(bombs))
	for _, b := range bombs {
		out = append(out, core.Bomb{
			GridPos:  protoPos(b.Pos),
			OwnerID:  int(b.Owner),
			Range:    int(b.Range),
			TimeLeft: int(b.TimeLeft),
		})
	}
	return out
}

func ProtoPowerUpsToCore(powerups []PowerUpInfo) []core.PowerUp {
	out := make([]core.PowerUp, 0, len(powerups))
	for _, pu := range powerups {
		kind := core.PowerUpFireUp
		if pu.Type == PowerUpBombUp {
			kind = core.PowerUpBombUp
		}
		out = append(out, core.PowerUp{GridPos: protoPos(pu.Pos), Kind: kind})
	}
	return out
}

func protoPositionsToCore(ps []Position) []core.GridPos {
	out := make([]core.GridPos, 0, len(ps))
	for _, p := range ps {
		out = append(out, protoPos(p))
	}
	return out
}

// ========== 消息转换 ==========

// ToGameStart 将 START_GAME 消息转换为开局信息
func ToGameStart(msg *Message) (*core.GameStart, error) {
	if err := checkMapSize(msg.MapSize); err != nil {
		return nil, err
	}
	return &core.GameStart{
		Map:         ProtoMapToCore(*msg.MapSize, msg.Items),
		Blocks:      protoPositionsToCore(msg.Blocks),
		Players:     ProtoPlayersToCore(msg.Players),
		PlayerIndex: int(msg.PlayerNum),
	}, nil
}

// ToGame 将 MOVE_REQUEST 消息转换为回合快照。炸弹位置会写入地图，
// 即使格子列表里没有标出。
func ToGame(msg *Message) (*core.Game, error) {
	if err := checkMapSize(msg.MapSize); err != nil {
		return nil, err
	}
	m := ProtoMapToCore(*msg.MapSize, msg.Items)
	bombs := ProtoBombsToCore(msg.Bombs)
	for _, b := range bombs {
		m.SetTile(b.GridX, b.GridY, core.TileBomb)
	}
	return &core.Game{
		Map:         m,
		Bombs:       bombs,
		PowerUps:    ProtoPowerUpsToCore(msg.PowerUps),
		Players:     ProtoPlayersToCore(msg.Players),
		Explosions:  core.Explosions(protoPositionsToCore(msg.Explosions)),
		PlayerIndex: int(msg.PlayerNum),
		Turn:        int(msg.ResponseID),
	}, nil
}
