package network

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsneed1234/slime-volleyball/room"
)

func TestSendDropsWhenBacklogFull(t *testing.T) {
	c := &client{
		id:   "test",
		send: make(chan []byte, 2),
		done: make(chan struct{}),
	}

	// Nothing drains the backlog; every call must still return immediately.
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for i := 0; i < 10; i++ {
			assert.NoError(t, c.Send([]byte{byte(i)}))
		}
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full backlog")
	}

	// The overflow was dropped, not queued: only the oldest frames remain.
	require.Len(t, c.send, 2)
	assert.Equal(t, []byte{0}, <-c.send)
	assert.Equal(t, []byte{1}, <-c.send)
}

func TestSendFailsAfterClose(t *testing.T) {
	c := &client{
		id:   "test",
		send: make(chan []byte, 2),
		done: make(chan struct{}),
	}
	close(c.done)
	assert.Error(t, c.Send([]byte("frame")))
}

func TestAwaitJoinReleasesLateSlot(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	// The room's driver is deliberately not running, standing in for a
	// stalled actor that answers only after the caller's deadline.
	r, err := room.New("TEST", 3, log.WithField("room", "TEST"))
	require.NoError(t, err)

	reply := make(chan room.JoinResult, 1)
	res, ok := awaitJoin(r, reply, 10*time.Millisecond)
	assert.False(t, ok)
	assert.Zero(t, res)

	// The actor gets around to assigning a slot after the deadline; the
	// drain must hand it straight back.
	reply <- room.JoinResult{PlayerIndex: 1}
	select {
	case cmd := <-r.Inbox:
		assert.Equal(t, room.Leave{Slot: 1}, cmd)
	case <-time.After(time.Second):
		t.Fatal("late-assigned slot was not released with a Leave")
	}
}

func TestAwaitJoinIgnoresLateFullReply(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	r, err := room.New("TEST", 3, log.WithField("room", "TEST"))
	require.NoError(t, err)

	reply := make(chan room.JoinResult, 1)
	_, ok := awaitJoin(r, reply, 10*time.Millisecond)
	require.False(t, ok)

	// A late rejection assigned no slot, so there is nothing to release.
	reply <- room.JoinResult{Full: true}
	select {
	case cmd := <-r.Inbox:
		t.Fatalf("unexpected command after late full reply: %#v", cmd)
	case <-time.After(100 * time.Millisecond):
	}
}
