package web

import (
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// Client is a single websocket connection.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	Send chan []byte
	ID   uint8

	paused  bool          // owned by the hub loop
	latency atomic.Uint32 // smoothed round trip time in microseconds
}

// ReadPump handles commands sent by the client until the
// connection is closed.
func (c *Client) ReadPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case CmdPause, CmdResume:
			select {
			case c.hub.commands <- command{client: c, paused: message[0] == CmdPause}:
			case <-c.hub.done:
				return
			}
		case CmdClose:
			return
		}
	}
}

// WritePump writes queued messages to the connection until the
// hub closes Send.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}

		// update average latency
		if rtt, err := tcpLatency(c.conn.UnderlyingConn()); err == nil && rtt > 0 {
			avg := c.latency.Load()
			c.latency.Store((avg*9 + uint32(rtt.Microseconds())) / 10)
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
