package network

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/dsneed1234/slime-volleyball/protocol"
	"github.com/dsneed1234/slime-volleyball/room"
)

// Server accepts websocket connections and dispatches their messages into
// room commands. It owns no game state itself; the manager does.
type Server struct {
	manager  *room.Manager
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

func NewServer(manager *room.Manager, log *logrus.Logger) *Server {
	return &Server{
		manager: manager,
		log:     log,
		upgrader: websocket.Upgrader{
			// For dev, allow all origins. Lock this down in prod.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades the connection and runs its pumps until the transport
// closes.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &client{
		id:   uuid.NewString(),
		ws:   ws,
		send: make(chan []byte, sendBacklog),
		done: make(chan struct{}),
	}
	c.log = s.log.WithField("conn", c.id)
	c.log.WithField("remote", ws.RemoteAddr().String()).Info("connection opened")

	go c.writePump()
	s.readPump(c)
}

// HandleRooms serves the active room list as JSON.
func (s *Server) HandleRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.manager.Rooms()); err != nil {
		s.log.WithError(err).Warn("write room list")
	}
}

// readPump decodes inbound messages until the connection dies, then detaches
// the player from their room. A read error is the only leave path.
func (s *Server) readPump(c *client) {
	defer func() {
		if c.joined {
			c.room.Inbox <- room.Leave{Slot: c.slot}
		}
		c.Close()
		c.log.Info("connection closed")
	}()

	c.ws.SetReadLimit(maxFrameSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, b, err := c.ws.ReadMessage()
		if err != nil {
			return
		}
		s.dispatch(c, b)
	}
}

// dispatch routes one message. Malformed or out-of-order messages are
// dropped, never fatal to the connection.
func (s *Server) dispatch(c *client, b []byte) {
	typ, err := protocol.DecodeType(b)
	if err != nil {
		c.log.WithError(err).Debug("dropping malformed message")
		return
	}

	switch typ {
	case protocol.MsgJoin:
		msg, err := protocol.Decode[protocol.Join](b)
		if err != nil {
			c.log.WithError(err).Debug("dropping malformed join")
			return
		}
		s.handleJoin(c, msg.RoomCode)
	case protocol.MsgInput:
		if !c.joined {
			c.log.Debug("dropping input before join")
			return
		}
		msg, err := protocol.Decode[protocol.Input](b)
		if err != nil {
			c.log.WithError(err).Debug("dropping malformed input")
			return
		}
		c.room.Inbox <- room.Input{Slot: c.slot, VX: msg.VX, Jump: msg.Jump}
	case protocol.MsgStart:
		if !c.joined {
			c.log.Debug("dropping start before join")
			return
		}
		c.room.Inbox <- room.Start{}
	default:
		c.log.WithField("type", typ).Debug("dropping unknown message type")
	}
}

const (
	joinWait     = 5 * time.Second
	lateJoinWait = time.Minute
)

// awaitJoin waits for the actor's answer to a Join command. If the answer
// misses the deadline, the reply is drained in the background and any slot
// the actor assigned late is handed straight back with a Leave, so a stalled
// room can never be left holding a slot for a connection that gave up on it.
func awaitJoin(r *room.Room, reply <-chan room.JoinResult, wait time.Duration) (room.JoinResult, bool) {
	select {
	case res := <-reply:
		return res, true
	case <-time.After(wait):
	}
	go func() {
		select {
		case res := <-reply:
			if !res.Full {
				select {
				case r.Inbox <- room.Leave{Slot: res.PlayerIndex}:
				default:
				}
			}
		case <-time.After(lateJoinWait):
		}
	}()
	return room.JoinResult{}, false
}

func (s *Server) handleJoin(c *client, code string) {
	if c.joined {
		// Room association is immutable for the connection's lifetime.
		c.log.Debug("dropping join on an already joined connection")
		return
	}
	r := s.manager.EnsureRoom(code)
	if r == nil {
		c.log.Debug("dropping join with empty room code")
		return
	}

	reply := make(chan room.JoinResult, 1)
	r.Inbox <- room.Join{Conn: c, Reply: reply}
	res, ok := awaitJoin(r, reply, joinWait)
	if !ok {
		// The room was pruned between lookup and command delivery, or its
		// actor is wedged. Drop the join; the client may issue another.
		c.log.WithField("room", code).Warn("join not answered, dropping")
		return
	}
	if res.Full {
		c.enqueue(protocol.NewFull())
		c.log.WithField("room", code).Info("join rejected, room full")
		return
	}

	c.room = r
	c.slot = res.PlayerIndex
	c.joined = true
	c.enqueue(protocol.NewJoined(res.PlayerIndex))
	c.log.WithFields(logrus.Fields{"room": code, "slot": res.PlayerIndex}).Info("joined room")
}
