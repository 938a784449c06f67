package dispatch

import (
	"testing"

	"github.com/go-mclib/gateway/internal/proto"
)

func TestTableLookupHandshake(t *testing.T) {
	table := Table{CompressionThreshold: 256, Description: staticDescription("{}")}
	d, err := table.Lookup(proto.StateHandshake, 0)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if _, ok := d.(HandshakeDispatcher); !ok {
		t.Fatalf("Lookup(Handshake) = %T, want HandshakeDispatcher", d)
	}
}

func TestTableLookupStatusAndLogin(t *testing.T) {
	table := Table{CompressionThreshold: 256, Description: staticDescription("{}")}

	d, err := table.Lookup(proto.StateStatus, 773)
	if err != nil {
		t.Fatalf("Lookup(Status): %v", err)
	}
	if _, ok := d.(StatusDispatcher); !ok {
		t.Fatalf("Lookup(Status) = %T, want StatusDispatcher", d)
	}

	d, err = table.Lookup(proto.StateLogin, 773)
	if err != nil {
		t.Fatalf("Lookup(Login): %v", err)
	}
	if _, ok := d.(*LoginDispatcher); !ok {
		t.Fatalf("Lookup(Login) = %T, want *LoginDispatcher", d)
	}
}

func TestTableLookupServesNewerVersionsOpenEnded(t *testing.T) {
	table := Table{CompressionThreshold: 256, Description: staticDescription("{}")}
	if _, err := table.Lookup(proto.StateStatus, 999); err != nil {
		t.Fatalf("Lookup(version=999): %v, want no error (open-ended table)", err)
	}
}

func TestTableLookupRejectsTooOldVersion(t *testing.T) {
	table := Table{CompressionThreshold: 256, Description: staticDescription("{}")}
	if _, err := table.Lookup(proto.StateStatus, 1); err == nil {
		t.Fatal("Lookup(version=1) = nil error, want an error")
	}
}
