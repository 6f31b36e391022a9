package network

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/dsneed1234/slime-volleyball/protocol"
	"github.com/dsneed1234/slime-volleyball/room"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = 25 * time.Second
	maxFrameSize = 4096
	sendBacklog  = 32
)

// client adapts one websocket connection to the room.Conn contract. Outbound
// frames go through a buffered channel drained by writePump; Send never
// blocks (non-blocking send, drop on full), so a stalled reader only loses
// its own stale frames and can never hold up a room's tick driver.
type client struct {
	id   string
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
	log  *logrus.Entry

	// Room association, fixed by the first successful join.
	room   *room.Room
	slot   int
	joined bool
}

func (c *client) Send(b []byte) error {
	select {
	case <-c.done:
		return fmt.Errorf("connection %s closed", c.id)
	default:
	}
	select {
	case c.send <- b:
	default:
		// Slot can't take the frame this tick; drop it.
	}
	return nil
}

func (c *client) Close() error {
	c.once.Do(func() {
		close(c.done)
		_ = c.ws.Close()
	})
	return nil
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer c.Close()

	for {
		select {
		case <-c.done:
			return
		case b := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, b); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// enqueue serializes a message for this client only.
func (c *client) enqueue(msg any) {
	b, err := protocol.Encode(msg)
	if err != nil {
		c.log.WithError(err).Error("encode outbound message")
		return
	}
	_ = c.Send(b)
}
