package web

import (
	"context"
	"encoding/binary"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomeboy/pkg/trace"
)

func startHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewHub("")
	go h.loop(ctx)

	srv := httptest.NewServer(h.Handler())
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	hello := readMessage(t, conn, MsgHello)
	if len(hello) != 2 || hello[1] != 1 {
		t.Fatalf("unexpected hello %v", hello)
	}
	return h, conn
}

// readMessage reads messages until one of the given type arrives.
func readMessage(t *testing.T, conn *websocket.Conn, msgType uint8) []byte {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for message %d: %v", msgType, err)
		}
		if len(msg) > 0 && msg[0] == msgType {
			return msg
		}
	}
}

func decodeBatch(t *testing.T, msg []byte) []trace.Entry {
	t.Helper()
	count := int(binary.LittleEndian.Uint16(msg[1:]))
	if len(msg) != 3+count*trace.EntrySize {
		t.Fatalf("batch of %d entries has %d bytes", count, len(msg))
	}
	entries := make([]trace.Entry, count)
	for i := range entries {
		e, err := trace.DecodeEntry(msg[3+i*trace.EntrySize:])
		if err != nil {
			t.Fatal(err)
		}
		entries[i] = e
	}
	return entries
}

func TestHub_Publish(t *testing.T) {
	h, conn := startHub(t)

	h.Publish([]trace.Entry{{PC: 0x0100}, {PC: 0x0101}})
	entries := decodeBatch(t, readMessage(t, conn, MsgTrace))
	if len(entries) != 2 || entries[0].PC != 0x0100 || entries[1].PC != 0x0101 {
		t.Fatalf("unexpected batch %+v", entries)
	}

	// an identical batch is dropped, so the next batch read is the new one
	h.Publish([]trace.Entry{{PC: 0x0100}, {PC: 0x0101}})
	h.Publish([]trace.Entry{{PC: 0x0200}})
	entries = decodeBatch(t, readMessage(t, conn, MsgTrace))
	if len(entries) != 1 || entries[0].PC != 0x0200 {
		t.Fatalf("expected duplicate batch to be dropped, got %+v", entries)
	}
}

func TestHub_Trace(t *testing.T) {
	h, conn := startHub(t)
	h.batchSize = 4

	for pc := uint16(0); pc < 4; pc++ {
		h.Trace(trace.Entry{PC: pc})
	}
	entries := decodeBatch(t, readMessage(t, conn, MsgTrace))
	if len(entries) != 4 || entries[3].PC != 3 {
		t.Fatalf("unexpected batch %+v", entries)
	}

	h.Trace(trace.Entry{PC: 0x10})
	h.Flush()
	entries = decodeBatch(t, readMessage(t, conn, MsgTrace))
	if len(entries) != 1 || entries[0].PC != 0x10 {
		t.Fatalf("expected flushed batch, got %+v", entries)
	}
}

func TestHub_Pause(t *testing.T) {
	h, conn := startHub(t)

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{CmdPause}); err != nil {
		t.Fatal(err)
	}
	if ack := readMessage(t, conn, MsgAck); ack[1] != 1 {
		t.Fatalf("expected pause ack, got %v", ack)
	}
	h.Publish([]trace.Entry{{PC: 0x1111}})
	waitBroadcast(t, h)

	if err := conn.WriteMessage(websocket.BinaryMessage, []byte{CmdResume}); err != nil {
		t.Fatal(err)
	}
	if ack := readMessage(t, conn, MsgAck); ack[1] != 0 {
		t.Fatalf("expected resume ack, got %v", ack)
	}
	h.Publish([]trace.Entry{{PC: 0x2222}})

	entries := decodeBatch(t, readMessage(t, conn, MsgTrace))
	if entries[0].PC != 0x2222 {
		t.Errorf("expected batch published while paused to be skipped, got PC %04X", entries[0].PC)
	}
}

// waitBroadcast waits for the hub loop to pick up queued batches.
func waitBroadcast(t *testing.T, h *Hub) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for len(h.broadcast) > 0 {
		if time.Now().After(deadline) {
			t.Fatal("hub did not drain its broadcast queue")
		}
		time.Sleep(time.Millisecond)
	}
}
