package bombmanv1

import (
	"testing"

	"google.golang.org/protobuf/reflect/protoreflect"
)

func TestFieldNumbers(t *testing.T) {
	tests := []struct {
		msg   protoreflect.MessageDescriptor
		field protoreflect.Name
		num   protoreflect.FieldNumber
		card  protoreflect.Cardinality
	}{
		{BomberManMessage, "messageType", 1, protoreflect.Required},
		{BomberManMessage, "mapSize", 5, protoreflect.Optional},
		{BomberManMessage, "explosions", 11, protoreflect.Repeated},
		{MoveResponse, "PlayerID", 1, protoreflect.Required},
		{MoveResponse, "response", 4, protoreflect.Required},
		{ClientWrapperMessage, "moveResponse", 3, protoreflect.Optional},
		{Position, "y", 2, protoreflect.Required},
	}
	for _, tt := range tests {
		fd := tt.msg.Fields().ByName(tt.field)
		if fd == nil {
			t.Fatalf("%s has no field %s", tt.msg.FullName(), tt.field)
		}
		if fd.Number() != tt.num || fd.Cardinality() != tt.card {
			t.Fatalf("%s = %d %v, want %d %v", fd.FullName(), fd.Number(), fd.Cardinality(), tt.num, tt.card)
		}
	}
	if File.Syntax() != protoreflect.Proto2 || File.Package() != "bombman.v1" {
		t.Fatalf("file = %s %s", File.Syntax(), File.Package())
	}
}
