package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJoin(t *testing.T) {
	raw := []byte(`{"type":"join","roomCode":"ABC"}`)

	typ, err := DecodeType(raw)
	require.NoError(t, err)
	assert.Equal(t, MsgJoin, typ)

	msg, err := Decode[Join](raw)
	require.NoError(t, err)
	assert.Equal(t, "ABC", msg.RoomCode)
}

func TestDecodeInput(t *testing.T) {
	raw := []byte(`{"type":"input","vx":-7.5,"jump":true}`)

	typ, err := DecodeType(raw)
	require.NoError(t, err)
	assert.Equal(t, MsgInput, typ)

	msg, err := Decode[Input](raw)
	require.NoError(t, err)
	assert.Equal(t, -7.5, msg.VX)
	assert.True(t, msg.Jump)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeType(nil)
	assert.Error(t, err)

	_, err = DecodeType([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeType([]byte(`{"vx":1}`))
	assert.Error(t, err, "missing type tag must be an error")
}

func TestEncodeOutboundMessages(t *testing.T) {
	b, err := Encode(NewJoined(1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"joined","playerIndex":1}`, string(b))

	b, err = Encode(NewFull())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"full"}`, string(b))

	_, err = Encode(nil)
	assert.Error(t, err)
}

func TestStateEnvelopeShape(t *testing.T) {
	snap := Snapshot{
		Tick:   42,
		Slimes: []SlimeSnapshot{{X: 1, Y: 2, Score: 3}, {X: 4, Y: 5}},
		Ball:   BallSnapshot{X: 6, Y: 7},
		Match:  MatchSnapshot{Started: true, Sets: [2]int{1, 0}, BestOf: 3},
	}
	b, err := Encode(NewState(snap))
	require.NoError(t, err)

	typ, err := DecodeType(b)
	require.NoError(t, err)
	assert.Equal(t, MsgState, typ)

	back, err := Decode[State](b)
	require.NoError(t, err)
	assert.Equal(t, snap, back.State)
}

func TestTickRate(t *testing.T) {
	assert.Equal(t, 60, TickHz)
}
