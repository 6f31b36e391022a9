package room

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dsneed1234/slime-volleyball/game"
	"github.com/dsneed1234/slime-volleyball/protocol"
)

// Room owns one game's world, match state and up to two player slots, all
// mutated by a single goroutine: Run selects over the command inbox and the
// tick driver, so inbound messages and simulation never race.
type Room struct {
	Inbox  chan any
	tickHz int
	world  *game.World
	match  *game.Match
	slots  [2]Conn // slot index = slime index
	quit   chan struct{}

	players atomic.Int32 // occupied slots, readable outside the actor

	Code    string           // room code (player supplied, opaque)
	OnEmpty func(code string) // called when the last player leaves
	log     *logrus.Entry
}

// New builds a stopped room. The caller starts the tick driver with go Run().
// bestOf must be a positive odd number.
func New(code string, bestOf int, log *logrus.Entry) (*Room, error) {
	match, err := game.NewMatch(bestOf)
	if err != nil {
		return nil, err
	}
	return &Room{
		Inbox:  make(chan any, 256),
		tickHz: protocol.TickHz,
		world:  game.NewWorld(rand.New(rand.NewSource(time.Now().UnixNano()))),
		match:  match,
		quit:   make(chan struct{}),
		Code:   code,
		log:    log,
	}, nil
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of occupied slots.
func (r *Room) NumPlayers() int {
	return int(r.players.Load())
}

// Run is the tick driver and command loop. The ticker fires for the life of
// the room regardless of match state; only the simulate-and-broadcast step is
// gated on the match being started, so an idle room is a frozen world with a
// free-running timer.
func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			if !r.match.Started {
				continue
			}
			r.stepOnce()
			r.broadcastState()
		}
	}
}

// stepOnce advances the physics one tick and folds any rally point into the
// set and match scores.
func (r *Room) stepOnce() {
	scorer := game.Step(r.world)
	if scorer == game.NoScorer {
		return
	}
	if r.world.Slimes[scorer].Score < game.SetPoint {
		return
	}
	r.world.ResetRally()
	if r.match.SetWon(scorer) {
		r.log.WithFields(logrus.Fields{
			"winner": scorer,
			"sets":   r.match.Sets,
		}).Info("match over")
	} else {
		r.log.WithFields(logrus.Fields{
			"winner": scorer,
			"sets":   r.match.Sets,
		}).Debug("set complete")
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		slot := r.freeSlot()
		if slot < 0 {
			c.Reply <- JoinResult{Full: true}
			return
		}
		r.slots[slot] = c.Conn
		r.players.Store(r.countSlots())
		r.log.WithField("slot", slot).Info("player joined")
		c.Reply <- JoinResult{PlayerIndex: slot}
	case Input:
		if c.Slot < 0 || c.Slot > 1 || r.slots[c.Slot] == nil {
			return
		}
		s := r.world.Slimes[c.Slot]
		s.VX = c.VX
		if c.Jump && !s.Jumping {
			s.VY = -game.JumpSpeed
			s.Jumping = true
		}
	case Start:
		r.match.Start()
		r.world.ResetRally()
		r.log.Info("match started")
	case Leave:
		r.handleLeave(c.Slot)
	}
}

func (r *Room) handleLeave(slot int) {
	if slot < 0 || slot > 1 || r.slots[slot] == nil {
		return
	}
	_ = r.slots[slot].Close()
	r.slots[slot] = nil
	r.players.Store(r.countSlots())
	r.log.WithField("slot", slot).Info("player left")
	if r.countSlots() == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) freeSlot() int {
	for i, c := range r.slots {
		if c == nil {
			return i
		}
	}
	return -1
}

func (r *Room) countSlots() int32 {
	var n int32
	for _, c := range r.slots {
		if c != nil {
			n++
		}
	}
	return n
}

// broadcastState serializes the snapshot once and hands it to every occupied
// slot. Delivery is fire-and-forget: a slot that cannot take the frame right
// now is skipped for this tick, never retried and never allowed to stall the
// driver (non-blocking send, drop on full).
func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.NewState(r.buildSnapshot()))
	if err != nil {
		return
	}
	for _, c := range r.slots {
		if c == nil {
			continue
		}
		_ = c.Send(b)
	}
}

func (r *Room) buildSnapshot() protocol.Snapshot {
	snapshot := protocol.Snapshot{
		Tick:   r.world.Tick,
		Slimes: make([]protocol.SlimeSnapshot, 0, len(r.world.Slimes)),
		Ball: protocol.BallSnapshot{
			X: r.world.Ball.X,
			Y: r.world.Ball.Y,
		},
		Match: protocol.MatchSnapshot{
			Started: r.match.Started,
			Sets:    r.match.Sets,
			BestOf:  r.match.BestOf,
		},
	}
	for _, s := range r.world.Slimes {
		snapshot.Slimes = append(snapshot.Slimes, protocol.SlimeSnapshot{
			X:     s.X,
			Y:     s.Y,
			Score: s.Score,
		})
	}
	return snapshot
}
