package dispatch

import (
	"testing"

	"github.com/go-mclib/gateway/internal/proto"
)

type staticDescription string

func (s staticDescription) StatusJSON() string { return string(s) }

func TestStatusRequestRespondsWithDescription(t *testing.T) {
	d := StatusDispatcher{Version: 773, Description: staticDescription(`{"version":{"name":"1.21"}}`)}
	raw := encodeTestPacket(t, proto.StateStatus, proto.Serverbound, 773, &proto.StatusRequest{})

	actions, err := d.Dispatch(raw)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("Dispatch produced %d actions, want 1", len(actions))
	}
	send, ok := actions[0].(SendPacket)
	if !ok {
		t.Fatalf("actions[0] = %T, want SendPacket", actions[0])
	}
	var resp proto.StatusResponse
	if _, err := proto.Unmarshal(send.Packet.Data, &resp); err != nil {
		t.Fatalf("Unmarshal StatusResponse: %v", err)
	}
	if string(resp.Payload) != `{"version":{"name":"1.21"}}` {
		t.Fatalf("StatusResponse.Payload = %q", resp.Payload)
	}
}

func TestPingRequestEchoesTimestamp(t *testing.T) {
	d := StatusDispatcher{Version: 773, Description: staticDescription("{}")}
	raw := encodeTestPacket(t, proto.StateStatus, proto.Serverbound, 773, &proto.PingRequest{Timestamp: 123456789})

	actions, err := d.Dispatch(raw)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	send := actions[0].(SendPacket)
	var pong proto.PongResponse
	if _, err := proto.Unmarshal(send.Packet.Data, &pong); err != nil {
		t.Fatalf("Unmarshal PongResponse: %v", err)
	}
	if pong.Timestamp != 123456789 {
		t.Fatalf("PongResponse.Timestamp = %d, want 123456789", pong.Timestamp)
	}
}

func TestStatusUnknownIDIgnored(t *testing.T) {
	d := StatusDispatcher{Version: 773, Description: staticDescription("{}")}
	actions, err := d.Dispatch(proto.RawPacket{ID: 0x55})
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(actions) != 0 {
		t.Fatalf("Dispatch(unknown id) = %v, want empty", actions)
	}
}
