package room

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dsneed1234/slime-volleyball/game"
)

// RoomInfo is returned by the API for the room list.
type RoomInfo struct {
	Code    string `json:"code"`
	Players int    `json:"players"`
}

// Manager is the process-scoped registry of rooms, keyed by code. Rooms come
// into being on first join and are pruned when the last player leaves; those
// are the only two transitions. Codes are opaque and never validated.
type Manager struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	bestOf int
	log    *logrus.Logger
}

func NewManager(bestOf int, log *logrus.Logger) (*Manager, error) {
	// Fail at startup rather than on first join.
	if _, err := game.NewMatch(bestOf); err != nil {
		return nil, fmt.Errorf("invalid room configuration: %w", err)
	}
	return &Manager{
		rooms:  make(map[string]*Room),
		bestOf: bestOf,
		log:    log,
	}, nil
}

// EnsureRoom returns the room for the given code, creating it and starting
// its tick driver if the code has never been seen.
func (m *Manager) EnsureRoom(code string) *Room {
	if code == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r
	}
	r, err := New(code, m.bestOf, m.log.WithField("room", code))
	if err != nil {
		// Unreachable: bestOf was validated in NewManager.
		m.log.WithError(err).WithField("room", code).Error("room creation failed")
		return nil
	}
	r.OnEmpty = func(c string) {
		m.PruneIfEmpty(c)
	}
	m.rooms[code] = r
	go r.Run()
	m.log.WithField("room", code).Info("room created")
	return r
}

// PruneIfEmpty stops and forgets the room if it has no players left. A later
// join with the same code gets a brand new room with default state.
func (m *Manager) PruneIfEmpty(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[code]
	if !ok || r.NumPlayers() > 0 {
		return
	}
	r.Stop()
	delete(m.rooms, code)
	m.log.WithField("room", code).Info("room pruned")
}

// Rooms returns all active rooms with code and player count.
func (m *Manager) Rooms() []RoomInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RoomInfo, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, RoomInfo{Code: code, Players: r.NumPlayers()})
	}
	return out
}

// Has reports whether a room currently exists for the code.
func (m *Manager) Has(code string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.rooms[code]
	return ok
}
