package protocol

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	bombmanv1 "bombman/api/proto/bombman/v1"
)

// ErrMissingField 必填字段缺失
var ErrMissingField = errors.New("message is missing required fields")

func missing(msg, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrMissingField, msg, field)
}

// node 按字段名读写 dynamicpb 消息，字段名与 bombman.proto 一致
type node struct {
	m protoreflect.Message
}

func newNode(md protoreflect.MessageDescriptor) node {
	return node{m: dynamicpb.NewMessage(md)}
}

func (n node) field(name string) protoreflect.FieldDescriptor {
	fd := n.m.Descriptor().Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		panic(fmt.Sprintf("%s has no field %q", n.m.Descriptor().FullName(), name))
	}
	return fd
}

func (n node) setInt32(name string, v int32) {
	n.m.Set(n.field(name), protoreflect.ValueOfInt32(v))
}

func (n node) setEnum(name string, v int32) {
	n.m.Set(n.field(name), protoreflect.ValueOfEnum(protoreflect.EnumNumber(v)))
}

func (n node) child(name string) node {
	return node{m: n.m.Mutable(n.field(name)).Message()}
}

func (n node) add(name string) node {
	list := n.m.Mutable(n.field(name)).List()
	elem := list.NewElement()
	list.Append(elem)
	return node{m: elem.Message()}
}

func (n node) has(name string) bool {
	return n.m.Has(n.field(name))
}

func (n node) int32(name string) int32 {
	return int32(n.m.Get(n.field(name)).Int())
}

func (n node) enum(name string) int32 {
	return int32(n.m.Get(n.field(name)).Enum())
}

func (n node) get(name string) node {
	return node{m: n.m.Get(n.field(name)).Message()}
}

func (n node) each(name string, fn func(node)) {
	list := n.m.Get(n.field(name)).List()
	for i := 0; i < list.Len(); i++ {
		fn(node{m: list.Get(i).Message()})
	}
}

// ========== 序列化 ==========

func encode(n node) ([]byte, error) {
	if err := proto.CheckInitialized(n.m.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	return proto.Marshal(n.m.Interface())
}

func putPosition(n node, p Position) {
	n.setInt32("x", p.X)
	n.setInt32("y", p.Y)
}

// MarshalMessage 编码服务器消息
func MarshalMessage(m *Message) ([]byte, error) {
	if m == nil {
		return nil, missing("BomberManMessage", "messageType")
	}
	n := newNode(bombmanv1.BomberManMessage)
	if m.Type != MessageTypeUnspecified {
		n.setEnum("messageType", int32(m.Type))
	}
	n.setInt32("playerID", m.PlayerID)
	n.setInt32("playerNum", m.PlayerNum)
	n.setInt32("responseID", m.ResponseID)
	if m.MapSize != nil {
		putPosition(n.child("mapSize"), *m.MapSize)
	}
	for _, it := range m.Items {
		e := n.add("item")
		putPosition(e.child("pos"), it.Pos)
		e.setEnum("mapItem", int32(it.Item))
	}
	for _, p := range m.Blocks {
		putPosition(n.add("blocks"), p)
	}
	for _, p := range m.Players {
		e := n.add("players")
		e.setInt32("playerNumber", p.PlayerNumber)
		putPosition(e.child("pos"), p.Pos)
		e.setInt32("bombRange", p.BombRange)
		e.setInt32("bombsLeft", p.BombsLeft)
	}
	for _, b := range m.Bombs {
		e := n.add("bombs")
		putPosition(e.child("pos"), b.Pos)
		e.setInt32("owner", b.Owner)
		e.setInt32("range", b.Range)
		e.setInt32("timeLeft", b.TimeLeft)
	}
	for _, pu := range m.PowerUps {
		e := n.add("powerups")
		putPosition(e.child("pos"), pu.Pos)
		e.setEnum("type", int32(pu.Type))
	}
	for _, p := range m.Explosions {
		putPosition(n.add("explosions"), p)
	}
	return encode(n)
}

// MarshalClientMessage 编码客户端消息
func MarshalClientMessage(m *ClientMessage) ([]byte, error) {
	if m == nil {
		return nil, missing("ClientWrapperMessage", "messageType")
	}
	if m.Type == MessageTypeMoveResponse && m.MoveResponse == nil {
		return nil, missing("ClientWrapperMessage", "moveResponse")
	}
	n := newNode(bombmanv1.ClientWrapperMessage)
	if m.Type != MessageTypeUnspecified {
		n.setEnum("messageType", int32(m.Type))
	}
	if m.Name != "" {
		n.m.Set(n.field("name"), protoreflect.ValueOfString(m.Name))
	}
	if r := m.MoveResponse; r != nil {
		e := n.child("moveResponse")
		e.setInt32("PlayerID", r.PlayerID)
		e.setInt32("playerNum", r.PlayerNum)
		e.setInt32("responseID", r.ResponseID)
		e.child("response").setEnum("move", int32(r.Move))
	}
	return encode(n)
}

// ========== 反序列化 ==========

// decode 解析 data，未知字段保留在消息中被忽略；必填字段缺失返回 ErrMissingField
func decode(data []byte, md protoreflect.MessageDescriptor) (node, error) {
	n := newNode(md)
	if err := (proto.UnmarshalOptions{AllowPartial: true}).Unmarshal(data, n.m.Interface()); err != nil {
		return node{}, err
	}
	if err := proto.CheckInitialized(n.m.Interface()); err != nil {
		return node{}, fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	return n, nil
}

func position(n node) Position {
	return Position{X: n.int32("x"), Y: n.int32("y")}
}

// UnmarshalMessage 解码服务器消息，并检查所有必填字段
func UnmarshalMessage(data []byte) (*Message, error) {
	n, err := decode(data, bombmanv1.BomberManMessage)
	if err != nil {
		return nil, err
	}
	m := &Message{
		Type:       MessageType(n.enum("messageType")),
		PlayerID:   n.int32("playerID"),
		PlayerNum:  n.int32("playerNum"),
		ResponseID: n.int32("responseID"),
	}
	if n.has("mapSize") {
		size := position(n.get("mapSize"))
		m.MapSize = &size
	}
	n.each("item", func(e node) {
		m.Items = append(m.Items, MapEntry{Pos: position(e.get("pos")), Item: MapItem(e.enum("mapItem"))})
	})
	n.each("blocks", func(e node) {
		m.Blocks = append(m.Blocks, position(e))
	})
	n.each("players", func(e node) {
		m.Players = append(m.Players, PlayerInfo{
			PlayerNumber: e.int32("playerNumber"),
			Pos:          position(e.get("pos")),
			BombRange:    e.int32("bombRange"),
			BombsLeft:    e.int32("bombsLeft"),
		})
	})
	n.each("bombs", func(e node) {
		m.Bombs = append(m.Bombs, BombInfo{
			Pos:      position(e.get("pos")),
			Owner:    e.int32("owner"),
			Range:    e.int32("range"),
			TimeLeft: e.int32("timeLeft"),
		})
	})
	n.each("powerups", func(e node) {
		m.PowerUps = append(m.PowerUps, PowerUpInfo{Pos: position(e.get("pos")), Type: PowerUpType(e.enum("type"))})
	})
	n.each("explosions", func(e node) {
		m.Explosions = append(m.Explosions, position(e))
	})
	return m, nil
}

// UnmarshalClientMessage 解码客户端消息
func UnmarshalClientMessage(data []byte) (*ClientMessage, error) {
	n, err := decode(data, bombmanv1.ClientWrapperMessage)
	if err != nil {
		return nil, err
	}
	m := &ClientMessage{
		Type: MessageType(n.enum("messageType")),
		Name: n.m.Get(n.field("name")).String(),
	}
	if n.has("moveResponse") {
		r := n.get("moveResponse")
		m.MoveResponse = &MoveResponse{
			PlayerID:   r.int32("PlayerID"),
			PlayerNum:  r.int32("playerNum"),
			ResponseID: r.int32("responseID"),
			Move:       Move(r.get("response").enum("move")),
		}
	}
	return m, nil
}
