// Package web streams trace entries to websocket clients, so a
// running machine can be watched from another process or host.
package web

import (
	"context"
	"encoding/binary"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gomeboy/pkg/trace"
)

// Server -> client message types.
const (
	// MsgHello is sent on connect: [MsgHello, id].
	MsgHello uint8 = iota + 1
	// MsgTrace carries a batch of entries:
	// [MsgTrace, count (uint16 LE), count * trace.EntrySize bytes].
	MsgTrace
	// MsgInfo reports each client's latency once a second:
	// [MsgInfo, (id, latency in ms (uint16 LE))...].
	MsgInfo
	// MsgAck confirms a pause/resume request: [MsgAck, paused].
	MsgAck
)

// Client -> server commands.
const (
	CmdPause  uint8 = 0x01
	CmdResume uint8 = 0x02
	CmdClose  uint8 = 0xFF
)

// DefaultBatchSize is the number of entries collected by Trace
// before a batch is published.
const DefaultBatchSize = 256

// Hub fans trace batches out to every connected client.
type Hub struct {
	addr    string
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
	commands             chan command
	done                 chan struct{}

	mu        sync.Mutex
	currentID uint8
	lastHash  uint64
	pending   []trace.Entry
	batchSize int
}

// NewHub returns a Hub that will listen on addr once Run is called.
func NewHub(addr string) *Hub {
	return &Hub{
		addr:       addr,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		commands:   make(chan command),
		done:       make(chan struct{}),
		batchSize:  DefaultBatchSize,
	}
}

// Run serves websocket connections on the hub's address until ctx
// is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	srv := &http.Server{Addr: h.addr, Handler: h.Handler()}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	go h.loop(ctx)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Handler returns the http.Handler upgrading requests on "/" to
// trace streams.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return // upgrader has already replied
		}

		c := h.newClient(conn)
		if c == nil {
			conn.Close()
			return
		}
		go c.ReadPump()
		go c.WritePump()
	})
	return mux
}

// Publish encodes entries as a single batch and queues it for
// every client. A batch identical to the previous one is dropped,
// as is any batch arriving while the queue is full.
func (h *Hub) Publish(entries []trace.Entry) {
	if len(entries) == 0 {
		return
	}
	msg := make([]byte, 3, 3+len(entries)*trace.EntrySize)
	msg[0] = MsgTrace
	binary.LittleEndian.PutUint16(msg[1:], uint16(len(entries)))
	for _, e := range entries {
		msg = e.AppendBinary(msg)
	}

	hash := xxhash.Sum64(msg)
	h.mu.Lock()
	duplicate := hash == h.lastHash
	h.lastHash = hash
	h.mu.Unlock()
	if duplicate {
		return
	}

	select {
	case h.broadcast <- msg:
	default:
	}
}

// Trace implements trace.Tracer, publishing entries in batches.
// Trace and Flush must be called from a single goroutine.
func (h *Hub) Trace(e trace.Entry) {
	h.pending = append(h.pending, e)
	if len(h.pending) >= h.batchSize {
		h.Flush()
	}
}

// Flush publishes any entries collected by Trace.
func (h *Hub) Flush() {
	h.Publish(h.pending)
	h.pending = h.pending[:0]
}

// loop owns the client set.
func (h *Hub) loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
			}
		case cmd := <-h.commands:
			if _, ok := h.clients[cmd.client]; !ok {
				continue
			}
			cmd.client.paused = cmd.paused
			ack := []byte{MsgAck, 0}
			if cmd.paused {
				ack[1] = 1
			}
			h.sendTo(cmd.client, ack)
		case <-ticker.C:
			h.send(h.info(), false)
		case msg := <-h.broadcast:
			h.send(msg, true)
		}
	}
}

// send queues msg for every client, dropping clients that cannot
// keep up. Paused clients are skipped when skipPaused is set.
func (h *Hub) send(msg []byte, skipPaused bool) {
	for c := range h.clients {
		if skipPaused && c.paused {
			continue
		}
		h.sendTo(c, msg)
	}
}

// sendTo queues msg for c, dropping the client if its queue is full.
func (h *Hub) sendTo(c *Client, msg []byte) {
	select {
	case c.Send <- msg:
	default:
		close(c.Send)
		delete(h.clients, c)
	}
}

// info builds a MsgInfo message.
func (h *Hub) info() []byte {
	data := []byte{MsgInfo}
	for c := range h.clients {
		data = append(data, c.ID)
		data = binary.LittleEndian.AppendUint16(data, uint16(c.latency.Load()/1000))
	}
	return data
}

// command is a pause/resume request from a client.
type command struct {
	client *Client
	paused bool
}

// newClient creates a new client and registers it to the hub. It
// returns nil once the hub has stopped.
func (h *Hub) newClient(conn *websocket.Conn) *Client {
	h.mu.Lock()
	h.currentID++
	id := h.currentID
	h.mu.Unlock()

	c := &Client{
		hub:  h,
		conn: conn,
		Send: make(chan []byte, 256),
		ID:   id,
	}
	c.Send <- []byte{MsgHello, c.ID}

	select {
	case h.register <- c:
		return c
	case <-h.done:
		return nil
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
