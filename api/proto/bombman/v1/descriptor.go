// Package bombmanv1 描述 bombman.proto 中的消息，供 dynamicpb 编解码使用。
// 字段编号与 bombman.proto 保持一致。
package bombmanv1

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

const protoPackage = "bombman.v1"

// File bombman.proto 的文件描述
var File protoreflect.FileDescriptor

// 消息描述
var (
	Position             protoreflect.MessageDescriptor
	MapEntry             protoreflect.MessageDescriptor
	PlayerInfo           protoreflect.MessageDescriptor
	BombInfo             protoreflect.MessageDescriptor
	PowerUpInfo          protoreflect.MessageDescriptor
	BomberManMessage     protoreflect.MessageDescriptor
	PlayerResponse       protoreflect.MessageDescriptor
	MoveResponse         protoreflect.MessageDescriptor
	ClientWrapperMessage protoreflect.MessageDescriptor
)

// 枚举描述
var (
	MessageType protoreflect.EnumDescriptor
	MapItem     protoreflect.EnumDescriptor
	PowerUpType protoreflect.EnumDescriptor
	Move        protoreflect.EnumDescriptor
)

func init() {
	fd, err := protodesc.NewFile(fileProto(), nil)
	if err != nil {
		panic(fmt.Sprintf("bombman.proto: %v", err))
	}
	File = fd

	msgs := fd.Messages()
	Position = msgs.ByName("Position")
	MapEntry = msgs.ByName("MapEntry")
	PlayerInfo = msgs.ByName("PlayerInfo")
	BombInfo = msgs.ByName("BombInfo")
	PowerUpInfo = msgs.ByName("PowerUpInfo")
	BomberManMessage = msgs.ByName("BomberManMessage")
	PlayerResponse = msgs.ByName("PlayerResponse")
	MoveResponse = msgs.ByName("MoveResponse")
	ClientWrapperMessage = msgs.ByName("ClientWrapperMessage")

	enums := fd.Enums()
	MessageType = enums.ByName("MessageType")
	MapItem = enums.ByName("MapItem")
	PowerUpType = enums.ByName("PowerUpType")
	Move = enums.ByName("Move")
}

var (
	required = descriptorpb.FieldDescriptorProto_LABEL_REQUIRED
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED

	tInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	tString  = descriptorpb.FieldDescriptorProto_TYPE_STRING
	tEnum    = descriptorpb.FieldDescriptorProto_TYPE_ENUM
	tMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

func field(name string, num int32, label descriptorpb.FieldDescriptorProto_Label,
	typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
	f := &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  label.Enum(),
		Type:   typ.Enum(),
	}
	if typeName != "" {
		f.TypeName = proto.String("." + protoPackage + "." + typeName)
	}
	return f
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

// enum 的取值从 first 开始连续编号
func enum(name string, first int32, values ...string) *descriptorpb.EnumDescriptorProto {
	e := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for i, v := range values {
		e.Value = append(e.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(v),
			Number: proto.Int32(first + int32(i)),
		})
	}
	return e
}

func fileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("bombman/v1/bombman.proto"),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto2"),
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enum("MessageType", 1, "START_GAME", "MOVE_REQUEST", "END_GAME", "NAME_RESPONSE", "MOVE_RESPONSE"),
			enum("MapItem", 0, "BLANK", "WALL", "BLOCK", "BOMB", "POWERUP"),
			enum("PowerUpType", 0, "FIREUP", "BOMBUP"),
			enum("Move", 0,
				"STAY_STILL", "MOVE_UP", "MOVE_DOWN", "MOVE_LEFT", "MOVE_RIGHT",
				"PLACE_BOMB", "PLACE_BOMB_MOVE_UP", "PLACE_BOMB_MOVE_DOWN",
				"PLACE_BOMB_MOVE_LEFT", "PLACE_BOMB_MOVE_RIGHT"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("Position",
				field("x", 1, required, tInt32, ""),
				field("y", 2, required, tInt32, ""),
			),
			message("MapEntry",
				field("pos", 1, required, tMessage, "Position"),
				field("mapItem", 2, required, tEnum, "MapItem"),
			),
			message("PlayerInfo",
				field("playerNumber", 1, required, tInt32, ""),
				field("pos", 2, required, tMessage, "Position"),
				field("bombRange", 3, optional, tInt32, ""),
				field("bombsLeft", 4, optional, tInt32, ""),
			),
			message("BombInfo",
				field("pos", 1, required, tMessage, "Position"),
				field("owner", 2, optional, tInt32, ""),
				field("range", 3, optional, tInt32, ""),
				field("timeLeft", 4, optional, tInt32, ""),
			),
			message("PowerUpInfo",
				field("pos", 1, required, tMessage, "Position"),
				field("type", 2, required, tEnum, "PowerUpType"),
			),
			message("BomberManMessage",
				field("messageType", 1, required, tEnum, "MessageType"),
				field("playerID", 2, optional, tInt32, ""),
				field("playerNum", 3, optional, tInt32, ""),
				field("responseID", 4, optional, tInt32, ""),
				field("mapSize", 5, optional, tMessage, "Position"),
				field("item", 6, repeated, tMessage, "MapEntry"),
				field("blocks", 7, repeated, tMessage, "Position"),
				field("players", 8, repeated, tMessage, "PlayerInfo"),
				field("bombs", 9, repeated, tMessage, "BombInfo"),
				field("powerups", 10, repeated, tMessage, "PowerUpInfo"),
				field("explosions", 11, repeated, tMessage, "Position"),
			),
			message("PlayerResponse",
				field("move", 1, required, tEnum, "Move"),
			),
			message("MoveResponse",
				field("PlayerID", 1, required, tInt32, ""),
				field("playerNum", 2, required, tInt32, ""),
				field("responseID", 3, required, tInt32, ""),
				field("response", 4, required, tMessage, "PlayerResponse"),
			),
			message("ClientWrapperMessage",
				field("messageType", 1, required, tEnum, "MessageType"),
				field("name", 2, optional, tString, ""),
				field("moveResponse", 3, optional, tMessage, "MoveResponse"),
			),
		},
	}
}
